package log

import (
	"sync"

	"gopkg.in/Sirupsen/logrus.v0"
)

// EntryZ is a zero-alloc-when-disabled structured log entry. Module.DebugZ
// et al. return nil when the module/level pair is disabled, and every
// builder method below is a no-op on a nil receiver, so a fully disabled
// call chain costs nothing beyond the initial Enabled() check.
type EntryZ struct {
	mod Module
	lvl Level
	msg string

	zfbuf [16]ZField
	zfidx int
}

var entryzPool = sync.Pool{New: func() any { return new(EntryZ) }}

// NewEntryZ returns a recycled, zeroed EntryZ.
func NewEntryZ() *EntryZ {
	e := entryzPool.Get().(*EntryZ)
	*e = EntryZ{}
	return e
}

func (e *EntryZ) push(f ZField) *EntryZ {
	if e == nil {
		return nil
	}
	if e.zfidx < len(e.zfbuf) {
		e.zfbuf[e.zfidx] = f
		e.zfidx++
	}
	return e
}

func (e *EntryZ) String(key, v string) *EntryZ {
	return e.push(ZField{Type: FieldTypeString, Key: key, String: v})
}

func (e *EntryZ) Hex8(key string, v uint8) *EntryZ {
	return e.push(ZField{Type: FieldTypeHex8, Key: key, Integer: uint64(v)})
}

func (e *EntryZ) Error(key string, err error) *EntryZ {
	return e.push(ZField{Type: FieldTypeError, Key: key, Error: err})
}

// End emits the entry and releases it back to the pool. Safe to call on a
// nil receiver (the module/level pair was disabled at creation time).
func (e *EntryZ) End() {
	if e == nil {
		return
	}

	final := logrus.StandardLogger().WithField("_mod", modNames[e.mod])
	for _, c := range contexts {
		c.AddLogContext(e)
	}
	for _, f := range e.zfbuf[:e.zfidx] {
		final = final.WithField(f.Key, f.Value())
	}
	switch e.lvl {
	case PanicLevel:
		final.Panic(e.msg)
	case FatalLevel:
		final.Fatal(e.msg)
	case ErrorLevel:
		final.Error(e.msg)
	case WarnLevel:
		final.Warn(e.msg)
	case InfoLevel:
		final.Info(e.msg)
	default:
		final.Debug(e.msg)
	}

	entryzPool.Put(e)
}
