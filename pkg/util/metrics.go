package util

import "time"

// TimeOperationMicroseconds runs op and reports how long it took.
func TimeOperationMicroseconds(op func()) int64 {
	return TimeOperation(op).Microseconds()
}

func TimeOperation(op func()) time.Duration {
	start := time.Now()
	op()
	return time.Since(start)
}
