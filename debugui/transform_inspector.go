package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/trispin/gfx"
)

// TransformInspector shows the animation time and the matrix bound to the
// last draw.
type TransformInspector struct{}

func (ti *TransformInspector) Render(source Source) {
	if !imgui.BeginV("Transform", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	t := source.Time()
	imgui.Text(fmt.Sprintf("t = %.4f", t))
	imgui.Text(fmt.Sprintf("x = %.4f", gfx.Oscillation(t)))

	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("MatrixTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		for _, row := range MatrixRows(source.Transform()) {
			imgui.TableNextRow()
			for _, cell := range row {
				imgui.TableNextColumn()
				imgui.Text(cell)
			}
		}
		imgui.EndTable()
	}

	imgui.End()
}

// MatrixRows formats m row by row for display.
func MatrixRows(m gfx.Mat4) [4][4]string {
	var rows [4][4]string
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			rows[row][col] = fmt.Sprintf("%+.3f", m[col*4+row])
		}
	}
	return rows
}
