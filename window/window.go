// Package window runs a frame loop inside an Ebitengine window, translating
// Ebitengine's Update, Layout and Draw callbacks into frame loop events.
package window

import (
	"errors"
	"fmt"
	"log/slog"

	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/trispin/frameloop"
	gfxebiten "github.com/plus3/trispin/gfx/ebiten"
)

// Config describes the window and the loop running in it.
type Config struct {
	Title  string
	Width  int
	Height int
	Loop   frameloop.Config
	Logger *slog.Logger
}

// DefaultConfig returns an 800x480 window titled "trispin".
func DefaultConfig() Config {
	return Config{
		Title:  "trispin",
		Width:  800,
		Height: 480,
		Loop:   frameloop.DefaultConfig(),
		Logger: slog.Default(),
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = def.Width, def.Height
	}
	if c.Logger == nil {
		c.Logger = def.Logger
	}
	if c.Loop == (frameloop.Config{}) {
		c.Loop = def.Loop
		c.Loop.Logger = nil
	}
	if c.Loop.Logger == nil {
		c.Loop.Logger = c.Logger
	}
	return c
}

// Run opens the window and blocks until it is closed. Setup errors are
// returned before the window is shown. A nil error means the user closed the
// window.
func Run(cfg Config) error {
	cfg = cfg.withDefaults()

	eb.SetWindowSize(cfg.Width, cfg.Height)
	eb.SetWindowTitle(cfg.Title)
	eb.SetWindowResizingMode(eb.WindowResizingModeEnabled)
	eb.SetWindowClosingHandled(true)

	surface, err := gfxebiten.NewSurface(cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	loop, err := frameloop.New(surface, cfg.Loop)
	if err != nil {
		return err
	}

	g := newGame(loop, surface, cfg)
	g.overlay = newOverlay(loop, cfg)

	if err := eb.RunGame(g); err != nil && !errors.Is(err, eb.Termination) {
		return err
	}
	return nil
}

// overlay draws on top of the presented frame. Only debug builds install
// one that draws anything.
type overlay interface {
	BeginFrame()
	EndFrame()
	Layout(width, height int)
	Draw(screen *eb.Image)
}

type game struct {
	loop    *frameloop.Loop
	surface *gfxebiten.Surface
	overlay overlay

	width, height int
	err           error
}

func newGame(loop *frameloop.Loop, surface *gfxebiten.Surface, cfg Config) *game {
	return &game{
		loop:    loop,
		surface: surface,
		overlay: noOverlay{},
		width:   cfg.Width,
		height:  cfg.Height,
	}
}

func (g *game) Update() error {
	g.overlay.BeginFrame()
	err := g.update(eb.IsWindowBeingClosed())
	g.overlay.EndFrame()
	return err
}

// update handles the close request, then reports that the event queue is
// drained. A fatal error recorded by an earlier callback ends the game.
func (g *game) update(closing bool) error {
	if g.err != nil {
		return g.err
	}

	if closing {
		if g.dispatch(frameloop.Event{Kind: frameloop.EventCloseRequested}) == frameloop.ActionExit {
			return eb.Termination
		}
	}

	g.dispatch(frameloop.Event{Kind: frameloop.EventAboutToWait})
	return g.err
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layout(outsideWidth, outsideHeight)
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func (g *game) layout(width, height int) {
	if width == g.width && height == g.height {
		return
	}
	g.width, g.height = width, height
	g.dispatch(frameloop.Resized(width, height))
}

func (g *game) Draw(screen *eb.Image) {
	g.redraw()
	g.surface.Present(screen)
	g.overlay.Draw(screen)
}

// redraw runs one render step if the loop asked for one since the last draw.
func (g *game) redraw() {
	if g.loop.TakeRedraw() {
		g.dispatch(frameloop.Event{Kind: frameloop.EventRedrawRequested})
	}
}

func (g *game) dispatch(ev frameloop.Event) frameloop.Action {
	action, err := g.loop.Handle(ev)
	if err != nil && g.err == nil {
		g.err = fmt.Errorf("handle %s: %w", ev.Kind, err)
	}
	return action
}

type noOverlay struct{}

func (noOverlay) BeginFrame()     {}
func (noOverlay) EndFrame()       {}
func (noOverlay) Layout(int, int) {}
func (noOverlay) Draw(*eb.Image)  {}
