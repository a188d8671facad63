// Package toast defines the fire-and-forget notification contract shared by
// the client engines. Implementations must not block.
package toast

// Kind classifies a notification.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
	Warning Kind = "warning"
)

// Notifier receives user-facing notifications.
type Notifier interface {
	Notify(message string, kind Kind)
}

// Func adapts a function to the Notifier interface.
type Func func(message string, kind Kind)

// Notify implements Notifier.
func (f Func) Notify(message string, kind Kind) { f(message, kind) }

// Discard is a Notifier that drops everything.
var Discard Notifier = Func(func(string, Kind) {})
