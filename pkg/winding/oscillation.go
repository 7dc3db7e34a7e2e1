package winding

import (
	"fmt"
	"math"

	"github.com/norasector/winding/pkg/util"
)

// rangeTolerance absorbs rounding in Offset±Amplitude when the oscillation is
// configured to touch the edges of the swept range exactly.
const rangeTolerance = 1e-9

// Oscillation drives the live winding frequency from elapsed time:
// Amplitude·sin(t/Period) + Offset.
type Oscillation struct {
	Amplitude float64
	Period    float64
	Offset    float64
}

// At returns the winding frequency after elapsed seconds.
func (o Oscillation) At(elapsed float64) float64 {
	return o.Amplitude*math.Sin(elapsed/o.Period) + o.Offset
}

// Bounds returns the lowest and highest frequency the oscillation reaches.
func (o Oscillation) Bounds() (low, high float64) {
	return util.FrequencyRange(o.Offset-o.Amplitude, o.Offset+o.Amplitude)
}

// Validate checks that the oscillation never leaves freqs. The upper edge is
// inclusive: a frequency equal to freqs.End lands on the right edge of the
// trajectory plot.
func (o Oscillation) Validate(freqs FrequencyRange) error {
	if o.Period == 0 || math.IsNaN(o.Period) || math.IsInf(o.Period, 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidOscillation, o.Period)
	}
	if err := freqs.Validate(); err != nil {
		return err
	}

	low, high := o.Bounds()
	eps := rangeTolerance * math.Max(1, freqs.Width())
	if math.IsNaN(low) || math.IsNaN(high) || low < freqs.Start-eps || high > freqs.End+eps {
		return fmt.Errorf("%w: oscillation spans [%g, %g], sweep covers [%g, %g]",
			ErrOscillationOutOfRange, low, high, freqs.Start, freqs.End)
	}
	return nil
}
