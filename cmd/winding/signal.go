package main

import "math"

// resonantSignal is the function being visualised: a 3 cycles/unit cosine lifted
// above zero.
func resonantSignal(x float64) float64 {
	return math.Cos(2*math.Pi*3*x) + 1
}
