package util

import "math"

// FrequencyRange returns the lowest and highest of freqs. NaN inputs are
// propagated so callers can reject them.
func FrequencyRange(freqs ...float64) (low, high float64) {
	low = math.Inf(1)
	high = math.Inf(-1)

	for _, freq := range freqs {
		if math.IsNaN(freq) {
			return math.NaN(), math.NaN()
		}
		if freq < low {
			low = freq
		}
		if freq > high {
			high = freq
		}
	}

	return
}
