package log

import (
	"gopkg.in/Sirupsen/logrus.v0"
)

// Entry is a lazily-resolved logrus entry tied to a single module. It's the
// printf-style counterpart to EntryZ, simpler to call but without the
// zero-alloc-when-disabled guarantee. Debugf is the only shape any code in
// this project actually calls through Logger -- diagnostics that need
// field-level detail go through EntryZ instead, so that's the only method
// kept here.
type Entry struct {
	mod Module
}

func (entry Entry) log() *logrus.Entry {
	final := logrus.StandardLogger().WithField("_mod", modNames[entry.mod])

	var z EntryZ
	for _, c := range contexts {
		c.AddLogContext(&z)
	}
	if z.zfidx > 0 {
		fields := make(logrus.Fields, z.zfidx)
		for _, f := range z.zfbuf[:z.zfidx] {
			fields[f.Key] = f.Value()
		}
		final = final.WithFields(fields)
	}
	return final
}

func (entry Entry) Debugf(format string, args ...any) {
	if entry.mod.Enabled(DebugLevel) {
		entry.log().Debugf(format, args...)
	}
}
