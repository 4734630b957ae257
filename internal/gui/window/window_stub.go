//go:build nogui

package window

import (
	"errors"

	"go.uber.org/zap"

	"github.com/username/feestdagen/internal/calendar"
)

// Run is not available in builds without the desktop window
func Run(opts Options, cal calendar.Calendar, logger *zap.Logger) error {
	return errors.New("desktop window is not available in this build (built with -tags nogui)")
}
