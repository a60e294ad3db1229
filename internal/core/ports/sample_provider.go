package ports

import "github.com/charfreq/charfreq/internal/core/domain/sample"

// SampleProvider defines the interface for sourcing sample corpora
// from a predefined list, like an embedded configuration file.
type SampleProvider interface {
	GetSamples() ([]sample.Sample, error)
}
