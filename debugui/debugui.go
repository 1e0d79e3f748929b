// Package debugui draws Dear ImGui panels over a running frame loop: frame
// timing, per-system render step stats and the current transform.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	eb "github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/trispin/frameloop"
	"github.com/plus3/trispin/gfx"
)

// Source is what the panels read from. *frameloop.Loop implements it.
type Source interface {
	Time() float32
	Transform() gfx.Mat4
	Frames() int64
	Stats() *frameloop.SchedulerStats
}

// Overlay owns the Dear ImGui backend and the panels drawn with it.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	source  Source
	timer   *FrameTimer

	stats     *PerformanceStats
	inspector *TransformInspector
}

// NewOverlay creates the ImGui backend for a window of the given size.
func NewOverlay(source Source, title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend:   backend,
		source:    source,
		timer:     NewFrameTimer(),
		stats:     NewPerformanceStats(120),
		inspector: &TransformInspector{},
	}
}

func (o *Overlay) BeginFrame() {
	o.backend.BeginFrame()
}

// EndFrame renders the panels and closes the ImGui frame.
func (o *Overlay) EndFrame() {
	o.stats.Render(o.source, o.timer.GetDeltaTime())
	o.inspector.Render(o.source)
	o.backend.EndFrame()
}

func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

func (o *Overlay) Draw(screen *eb.Image) {
	o.backend.Draw(screen)
}
