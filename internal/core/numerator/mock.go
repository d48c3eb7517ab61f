package numerator

import "time"

// MockGenerator is a test implementation of Generator.
// Use in unit tests to get predictable document numbers.
type MockGenerator struct {
	NextFunc func(now time.Time) string
}

// Next implements Generator.
func (m *MockGenerator) Next(now time.Time) string {
	if m.NextFunc != nil {
		return m.NextFunc(now)
	}
	return "MOCK-20260101-0000"
}

// Ensure compile-time interface compliance.
var _ Generator = (*MockGenerator)(nil)
