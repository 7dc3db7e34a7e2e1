package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/norasector/winding/pkg/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
)

// At 72 dpi one vg point is one pixel.
const pixelDPI = 72

func init() {
	font.DefaultCache.Add(liberation.Collection())
}

// FrameSink receives every committed frame as an encoded PNG.
type FrameSink interface {
	Publish(frame []byte)
}

// Canvas is a raster Backend built on the gonum/plot vgimg canvas. Each
// committed frame is PNG encoded and handed to the frame sink, then the
// canvas waits for the next tick of its frame rate.
type Canvas struct {
	width         int
	height        int
	background    color.Color
	frameInterval time.Duration
	sink          FrameSink

	canvas *vgimg.Canvas
	faces  map[float64]font.Face
	ticker *time.Ticker
	buf    bytes.Buffer
}

type CanvasOption func(c *Canvas)

// WithFrameSink publishes committed frames to sink.
func WithFrameSink(sink FrameSink) CanvasOption {
	return func(c *Canvas) {
		c.sink = sink
	}
}

// WithFrameRate paces CommitAndWait to fps frames per second. Zero disables
// pacing.
func WithFrameRate(fps int) CanvasOption {
	return func(c *Canvas) {
		if fps <= 0 {
			c.frameInterval = 0
			return
		}
		c.frameInterval = time.Second / time.Duration(fps)
	}
}

func NewCanvas(width, height int, opts ...CanvasOption) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	c := &Canvas{
		width:      width,
		height:     height,
		background: Black,
		faces:      make(map[float64]font.Face),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Clear starts a new frame filled with bg.
func (c *Canvas) Clear(bg color.Color) {
	c.background = bg
	c.canvas = vgimg.NewWith(
		vgimg.UseWH(vg.Length(c.width), vg.Length(c.height)),
		vgimg.UseDPI(pixelDPI),
		vgimg.UseBackgroundColor(bg),
	)
}

func (c *Canvas) frame() *vgimg.Canvas {
	if c.canvas == nil {
		c.Clear(c.background)
	}
	return c.canvas
}

// toVG flips screen coordinates into vg's bottom-left origin.
func (c *Canvas) toVG(p geom.Point) vg.Point {
	return vg.Point{X: vg.Length(p.X), Y: vg.Length(float64(c.height) - p.Y)}
}

func (c *Canvas) DrawLine(p0, p1 geom.Point, thickness float64, col color.Color) {
	cv := c.frame()
	cv.SetLineWidth(vg.Length(thickness))
	cv.SetColor(col)

	var path vg.Path
	path.Move(c.toVG(p0))
	path.Line(c.toVG(p1))
	cv.Stroke(path)
}

func (c *Canvas) DrawCircle(center geom.Point, radius float64, col color.Color) {
	cv := c.frame()
	cv.SetColor(col)

	pt := c.toVG(center)
	r := vg.Length(radius)

	var path vg.Path
	path.Move(vg.Point{X: pt.X + r, Y: pt.Y})
	path.Arc(pt, r, 0, 2*math.Pi)
	path.Close()
	cv.Fill(path)
}

func (c *Canvas) DrawText(text string, pos geom.Point, size float64, col color.Color) {
	cv := c.frame()
	cv.SetColor(col)
	cv.FillString(c.face(size), c.toVG(pos), text)
}

func (c *Canvas) face(size float64) font.Face {
	f, ok := c.faces[size]
	if !ok {
		f = font.DefaultCache.Lookup(plot.DefaultFont, vg.Length(size))
		c.faces[size] = f
	}
	return f
}

// Image returns the frame drawn so far.
func (c *Canvas) Image() image.Image {
	return c.frame().Image()
}

// WritePNG encodes the current frame.
func (c *Canvas) WritePNG(w io.Writer) error {
	_, err := vgimg.PngCanvas{Canvas: c.frame()}.WriteTo(w)
	return err
}

// CommitAndWait encodes the frame, publishes it and blocks until the next
// frame tick or ctx is done.
func (c *Canvas) CommitAndWait(ctx context.Context) error {
	if c.sink != nil {
		c.buf.Reset()
		if err := c.WritePNG(&c.buf); err != nil {
			return fmt.Errorf("encoding frame: %w", err)
		}
		frame := make([]byte, c.buf.Len())
		copy(frame, c.buf.Bytes())
		c.sink.Publish(frame)
	}

	if c.frameInterval <= 0 {
		return ctx.Err()
	}
	if c.ticker == nil {
		c.ticker = time.NewTicker(c.frameInterval)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-c.ticker.C:
		return nil
	}
}

func (c *Canvas) Close() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
}
