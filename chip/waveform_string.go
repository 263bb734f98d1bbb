// Code generated by "stringer -type=Waveform"; hand-maintained here since
// the generator is not run as part of this build.

package chip

import "strconv"

func _() {
	var x [1]struct{}
	_ = x[WaveSine-0]
	_ = x[WaveHalfSinSquared-1]
	_ = x[WaveFullRectSine-2]
	_ = x[WaveHalfSine-3]
	_ = x[WaveDoubleHalfSine-4]
	_ = x[WaveDoubleHalfSineAbs-5]
	_ = x[WaveSquare-6]
	_ = x[WaveExternal-7]
}

const _Waveform_name = "WaveSineWaveHalfSinSquaredWaveFullRectSineWaveHalfSineWaveDoubleHalfSineWaveDoubleHalfSineAbsWaveSquareWaveExternal"

var _Waveform_index = [...]uint8{0, 8, 26, 42, 54, 72, 93, 103, 115}

func (i Waveform) String() string {
	if i >= Waveform(len(_Waveform_index)-1) {
		return "Waveform(" + strconv.FormatInt(int64(i), 10) + ")"
	}
	return _Waveform_name[_Waveform_index[i]:_Waveform_index[i+1]]
}
