package chip

// group is a column of four slots (banks) that cooperate according to its
// sync mode (§3 Group, §4.6).
type group struct {
	sync  SyncMode
	pfm   bool
	muted bool
}

// pfmEligible reports whether a group's PFM flag is honoured at all: only
// groups 0, 4 and 8 carry the extended PFM routing (§2, §3).
func pfmEligible(groupnum int) bool {
	return groupnum == 0 || groupnum == 4 || groupnum == 8
}

// slotIndex returns the absolute slot index for (groupnum, bank), matching
// the chip's 12x4 slots[bank*12+groupnum] layout.
func slotIndex(groupnum, bank int) int {
	return bank*numGroups + groupnum
}
