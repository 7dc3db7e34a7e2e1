package visualizer

import "github.com/norasector/winding/pkg/geom"

// Layout places the plots on screen. Proportions are those of the 800x600
// original: signal across the top third, winding bottom-left, trajectory
// bottom-right.
type Layout struct {
	Signal         geom.Rect
	WindingCenter  geom.Point
	WindingRadius  float64
	Trajectory     geom.Rect
	MarkerTop      float64
	MarkerBottom   float64
	CentroidRadius float64
	Text           geom.Point
	TextSize       float64
}

func NewLayout(width, height int) Layout {
	w, h := float64(width), float64(height)
	return Layout{
		Signal:         geom.NewRect(0, 0, w, h/3),
		WindingCenter:  geom.Pt(w*3/16, h*7/12),
		WindingRadius:  w / 8,
		Trajectory:     geom.NewRect(w/2, h*0.45, w*7/16, w*7/16),
		MarkerTop:      h / 3,
		MarkerBottom:   h,
		CentroidRadius: 5,
		Text:           geom.Pt(10, h-24),
		TextSize:       24,
	}
}
