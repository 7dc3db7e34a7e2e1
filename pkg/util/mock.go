package util

import (
	"sync"

	"github.com/influxdata/influxdb-client-go/api/write"
)

// MockWriteAPI stands in for the InfluxDB write API when no database is
// configured. It keeps a count of the points it swallowed.
type MockWriteAPI struct {
	mu     sync.Mutex
	points int
}

func (m *MockWriteAPI) WriteRecord(line string) {}

func (m *MockWriteAPI) WritePoint(point *write.Point) {
	m.mu.Lock()
	m.points++
	m.mu.Unlock()
}

func (m *MockWriteAPI) Flush() {}

func (m *MockWriteAPI) Close() {}

// Errors returns nil; nothing is ever written so nothing can fail.
func (m *MockWriteAPI) Errors() <-chan error { return nil }

// Points returns the number of points passed to WritePoint.
func (m *MockWriteAPI) Points() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.points
}
