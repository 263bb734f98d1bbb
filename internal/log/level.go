package log

import "gopkg.in/Sirupsen/logrus.v0"

// Level mirrors logrus' severity ordering: lower is more severe. Modules are
// always enabled for WarnLevel and below; Debug/Info additionally require
// the module's debug bit to be set (see Module.Enabled).
type Level int

const (
	PanicLevel Level = iota
	FatalLevel
	ErrorLevel
	WarnLevel
	InfoLevel
	DebugLevel
)

func (l Level) logrus() logrus.Level {
	switch l {
	case PanicLevel:
		return logrus.PanicLevel
	case FatalLevel:
		return logrus.FatalLevel
	case ErrorLevel:
		return logrus.ErrorLevel
	case WarnLevel:
		return logrus.WarnLevel
	case InfoLevel:
		return logrus.InfoLevel
	default:
		return logrus.DebugLevel
	}
}
