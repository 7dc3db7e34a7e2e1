// Package render is the boundary between the visualiser and whatever puts
// pixels on a screen. The visualiser only issues line, circle and text calls
// and commits once per frame.
package render

import (
	"context"
	"image/color"

	"github.com/norasector/winding/pkg/geom"
	"golang.org/x/image/colornames"
)

// Renderer receives drawing calls in screen coordinates, y growing downward.
type Renderer interface {
	DrawLine(p0, p1 geom.Point, thickness float64, c color.Color)
	DrawCircle(center geom.Point, radius float64, c color.Color)
	// DrawText draws text with its baseline starting at pos.
	DrawText(text string, pos geom.Point, size float64, c color.Color)
}

// Backend is a Renderer that owns a frame. Clear starts a frame and
// CommitAndWait presents it and waits for the next refresh. CommitAndWait is
// the only place the frame loop yields.
type Backend interface {
	Renderer
	Clear(c color.Color)
	CommitAndWait(ctx context.Context) error
}

var (
	Black     color.Color = colornames.Black
	White     color.Color = colornames.White
	Gray      color.Color = colornames.Gray
	Red       color.Color = colornames.Red
	Green     color.Color = colornames.Lime
	Gold      color.Color = colornames.Gold
	Highlight color.Color = color.NRGBA{R: 255, G: 255, B: 128, A: 255}
)
