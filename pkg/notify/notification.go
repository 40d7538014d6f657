package notify

import (
	"errors"
	"time"
)

var ErrUnknownNotification = errors.New("unknown notification")

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// ID identifies a shown notification within a Sink.
type ID uint64

type Notification struct {
	Level   Level
	Message string

	// DismissAfter is how long the notification stays up. Zero keeps it
	// until it is clicked or dismissed.
	DismissAfter time.Duration

	// OnClick may be nil.
	OnClick func()
}

type Sink interface {
	Show(n Notification) ID
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(n Notification) ID

func (f SinkFunc) Show(n Notification) ID {
	return f(n)
}
