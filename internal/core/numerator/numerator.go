// Package numerator provides document number generation.
//
// Numbers are derived from the creation timestamp (INV-yyyyMMdd-HHmm) and are
// generated exactly once per document. They stay editable afterwards and
// uniqueness is deliberately not enforced anywhere in the engine.
package numerator

import (
	"fmt"
	"time"
)

// Generator produces document numbers.
type Generator interface {
	// Next returns the number for a document created at the given time.
	Next(now time.Time) string
}

// Config holds numbering configuration.
type Config struct {
	// Prefix added to all numbers (e.g., "INV")
	Prefix string
}

// DefaultConfig returns the standard invoice numbering configuration.
func DefaultConfig() Config {
	return Config{Prefix: "INV"}
}

// Timestamp generates numbers of the form PREFIX-yyyyMMdd-HHmm.
type Timestamp struct {
	cfg Config
}

// NewTimestamp creates a timestamp-based generator.
func NewTimestamp(cfg Config) *Timestamp {
	if cfg.Prefix == "" {
		cfg = DefaultConfig()
	}
	return &Timestamp{cfg: cfg}
}

// Next implements Generator.
func (g *Timestamp) Next(now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", g.cfg.Prefix, now.Format("20060102"), now.Format("1504"))
}

var _ Generator = (*Timestamp)(nil)
