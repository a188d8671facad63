package app

import (
	"github.com/rs/zerolog"

	"github.com/hitenSisghSoft/soundbox/internal/client/toast"
)

// logNotifier renders toasts through zerolog: the console's stand-in for the
// dashboard's notification tray.
type logNotifier struct {
	log zerolog.Logger
}

// NewNotifier builds the console toast collaborator.
func NewNotifier(log zerolog.Logger) toast.Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Notify(message string, kind toast.Kind) {
	switch kind {
	case toast.Success:
		n.log.Info().Str("toast", "success").Msg(message)
	case toast.Error:
		n.log.Error().Str("toast", "error").Msg(message)
	case toast.Warning:
		n.log.Warn().Str("toast", "warning").Msg(message)
	default:
		n.log.Info().Str("toast", "info").Msg(message)
	}
}
