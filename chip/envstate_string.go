// Code generated by "stringer -type=EnvState"; hand-maintained here since
// the generator is not run as part of this build.

package chip

import "strconv"

func _() {
	// An "invalid array index" compiler error signals that the constant
	// values have changed. Re-run the stringer command to generate them
	// again.
	var x [1]struct{}
	_ = x[EnvAttack-0]
	_ = x[EnvDecay1-1]
	_ = x[EnvDecay2-2]
	_ = x[EnvRelease-3]
}

const _EnvState_name = "EnvAttackEnvDecay1EnvDecay2EnvRelease"

var _EnvState_index = [...]uint8{0, 9, 18, 27, 37}

func (i EnvState) String() string {
	if i >= EnvState(len(_EnvState_index)-1) {
		return "EnvState(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _EnvState_name[_EnvState_index[i]:_EnvState_index[i+1]]
}
