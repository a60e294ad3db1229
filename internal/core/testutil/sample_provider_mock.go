package testutil

import (
	"github.com/charfreq/charfreq/internal/core/domain/sample"
	"github.com/charfreq/charfreq/internal/core/ports"
)

// MockSampleProvider is a mock implementation of ports.SampleProvider for testing.
type MockSampleProvider struct {
	GetSamplesFunc func() ([]sample.Sample, error)
}

func (m *MockSampleProvider) GetSamples() ([]sample.Sample, error) {
	if m.GetSamplesFunc != nil {
		return m.GetSamplesFunc()
	}
	return nil, nil // Default behavior
}

// Ensure MockSampleProvider implements the ports.SampleProvider interface.
var _ ports.SampleProvider = (*MockSampleProvider)(nil)
