// Code generated by "stringer -type=SyncMode"; hand-maintained here since
// the generator is not run as part of this build.

package chip

import "strconv"

func _() {
	var x [1]struct{}
	_ = x[SyncFM4-0]
	_ = x[SyncFM2x2-1]
	_ = x[SyncFM3PCM1-2]
	_ = x[SyncPCM4-3]
}

const _SyncMode_name = "SyncFM4SyncFM2x2SyncFM3PCM1SyncPCM4"

var _SyncMode_index = [...]uint8{0, 7, 16, 27, 35}

func (i SyncMode) String() string {
	if i >= SyncMode(len(_SyncMode_index)-1) {
		return "SyncMode(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _SyncMode_name[_SyncMode_index[i]:_SyncMode_index[i+1]]
}
