package samplecorpus

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/charfreq/charfreq/internal/core/domain/sample"
	"github.com/charfreq/charfreq/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// embeddedSampleCorpora holds the YAML list of sample corpora compiled
// into the binary.
//
//go:embed samples.yaml
var embeddedSampleCorpora []byte

// YAMLProvider implements the SampleProvider interface by decoding
// sample corpora from the embedded YAML document.
type YAMLProvider struct{}

// NewYAMLProvider creates a new YAMLProvider backed by the embedded corpora.
func NewYAMLProvider() (ports.SampleProvider, error) {
	return &YAMLProvider{}, nil
}

// GetSamples decodes and returns the embedded sample corpora.
// Empty embedded content means no samples and is not an error.
func (p *YAMLProvider) GetSamples() ([]sample.Sample, error) {
	samples := []sample.Sample{}

	if len(embeddedSampleCorpora) == 0 {
		return samples, nil // Nothing embedded means no samples.
	}

	decoder := yaml.NewDecoder(bytes.NewReader(embeddedSampleCorpora))
	decoder.KnownFields(true)

	err := decoder.Decode(&samples)
	if err != nil {
		// A document that contains only comments or "---" yields io.EOF
		// rather than an empty list; treat it the same as empty content.
		if errors.Is(err, io.EOF) {
			return samples, nil
		}
		return nil, fmt.Errorf("failed to unmarshal embedded sample corpora: %w", err)
	}

	return samples, nil
}

// Find returns the sample with the given name from samples, and whether
// it was found. Lookup is exact and case-sensitive.
func Find(samples []sample.Sample, name string) (sample.Sample, bool) {
	for _, s := range samples {
		if s.Name == name {
			return s, true
		}
	}
	return sample.Sample{}, false
}
