package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointOps(t *testing.T) {
	p := Pt(3, 4)
	assert.Equal(t, 5.0, p.Abs())
	assert.Equal(t, Pt(4, 6), p.Add(Pt(1, 2)))
	assert.Equal(t, Pt(6, 8), p.Scale(2))
	assert.Equal(t, Point{}, p.Scale(0))
}

func TestRectEdges(t *testing.T) {
	r := NewRect(400, 270, 350, 350)
	assert.Equal(t, 620.0, r.Bottom())
	assert.Equal(t, 750.0, r.Right())
}
