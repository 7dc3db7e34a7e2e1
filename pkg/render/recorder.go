package render

import (
	"context"
	"image/color"

	"github.com/norasector/winding/pkg/geom"
)

type CallKind int

const (
	CallLine CallKind = iota
	CallCircle
	CallText
)

// Call is one recorded drawing instruction.
type Call struct {
	Kind      CallKind
	From      geom.Point
	To        geom.Point
	Thickness float64
	Radius    float64
	Size      float64
	Text      string
	Color     color.Color
}

// Recorder is a Backend that keeps the calls of the current frame instead of
// drawing them.
type Recorder struct {
	Calls      []Call
	Background color.Color
	Commits    int

	// OnCommit, if set, is called after each commit; a non-nil error is
	// returned from CommitAndWait.
	OnCommit func(frame int) error
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) DrawLine(p0, p1 geom.Point, thickness float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Kind: CallLine, From: p0, To: p1, Thickness: thickness, Color: c})
}

func (r *Recorder) DrawCircle(center geom.Point, radius float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Kind: CallCircle, From: center, To: center, Radius: radius, Color: c})
}

func (r *Recorder) DrawText(text string, pos geom.Point, size float64, c color.Color) {
	r.Calls = append(r.Calls, Call{Kind: CallText, From: pos, To: pos, Size: size, Text: text, Color: c})
}

func (r *Recorder) Clear(c color.Color) {
	r.Background = c
	r.Calls = r.Calls[:0]
}

func (r *Recorder) CommitAndWait(ctx context.Context) error {
	r.Commits++
	if r.OnCommit != nil {
		if err := r.OnCommit(r.Commits); err != nil {
			return err
		}
	}
	return ctx.Err()
}

// Filter returns the recorded calls of kind k drawn in colour c. A nil c
// matches any colour.
func (r *Recorder) Filter(k CallKind, c color.Color) []Call {
	var ret []Call
	for _, call := range r.Calls {
		if call.Kind != k {
			continue
		}
		if c != nil && !sameColor(call.Color, c) {
			continue
		}
		ret = append(ret, call)
	}
	return ret
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
