//go:build debugui

package window

import (
	"github.com/plus3/trispin/debugui"
	"github.com/plus3/trispin/frameloop"
)

func newOverlay(loop *frameloop.Loop, cfg Config) overlay {
	return debugui.NewOverlay(loop, cfg.Title, cfg.Width, cfg.Height)
}
