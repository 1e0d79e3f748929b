//go:build !debugui

package window

import "github.com/plus3/trispin/frameloop"

func newOverlay(*frameloop.Loop, Config) overlay {
	return noOverlay{}
}
