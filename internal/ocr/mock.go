package ocr

import (
	"context"
	"math/rand/v2"
	"strings"
	"time"
)

const (
	defaultMinDelay = 1000 * time.Millisecond
	defaultMaxDelay = 2000 * time.Millisecond

	// confidenceVariation bounds the random jitter applied per invocation.
	confidenceVariation = 0.025
)

// MockOptions configures the mock extraction service.
type MockOptions struct {
	// MinDelay and MaxDelay bound the simulated processing time.
	// Defaults: 1000ms and 2000ms.
	MinDelay time.Duration
	MaxDelay time.Duration
	// SkipDelay disables the simulated delay for deterministic tests.
	SkipDelay bool
}

// Mock returns realistic Swiss document data without calling a real OCR
// provider. Routing is a case-insensitive filename keyword match.
type Mock struct {
	minDelay  time.Duration
	maxDelay  time.Duration
	skipDelay bool
}

// NewMock constructs a mock extraction service.
func NewMock(opts MockOptions) *Mock {
	minDelay := opts.MinDelay
	if minDelay <= 0 {
		minDelay = defaultMinDelay
	}
	maxDelay := opts.MaxDelay
	if maxDelay < minDelay {
		maxDelay = defaultMaxDelay
	}
	return &Mock{
		minDelay:  minDelay,
		maxDelay:  maxDelay,
		skipDelay: opts.SkipDelay,
	}
}

// ExtractText selects a sample by filename keyword and returns it with a
// jittered confidence score.
func (m *Mock) ExtractText(ctx context.Context, data []byte, mimeType string, filename string) (Result, error) {
	_ = data
	_ = mimeType

	if !m.skipDelay {
		if err := sleepRandom(ctx, m.minDelay, m.maxDelay); err != nil {
			return Result{}, err
		}
	}

	result := selectSample(filename)
	result.Confidence = varyConfidence(result.Confidence)
	return result, nil
}

// selectSample routes by keyword, first match wins; unmatched filenames get
// a uniform-random sample.
func selectSample(filename string) Result {
	lower := strings.ToLower(filename)

	for _, token := range []string{"steuer", "tax"} {
		if strings.Contains(lower, token) {
			return germanTaxSample
		}
	}
	for _, token := range []string{"assurance", "insurance", "css", "lamal", "kvg"} {
		if strings.Contains(lower, token) {
			return frenchInsuranceSample
		}
	}
	for _, token := range []string{"permesso", "permit", "comune", "migrazione", "dimora"} {
		if strings.Contains(lower, token) {
			return italianPermitSample
		}
	}

	samples := []Result{germanTaxSample, frenchInsuranceSample, italianPermitSample}
	return samples[rand.IntN(len(samples))]
}

// varyConfidence applies uniform jitter in [-confidenceVariation,
// +confidenceVariation], clamped to [0, 1].
func varyConfidence(base float64) float64 {
	jitter := (rand.Float64()*2 - 1) * confidenceVariation
	value := base + jitter
	if value > 1 {
		return 1
	}
	if value < 0 {
		return 0
	}
	return value
}

func sleepRandom(ctx context.Context, min, max time.Duration) error {
	delay := min
	if max > min {
		delay += time.Duration(rand.Int64N(int64(max - min)))
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

var _ Service = (*Mock)(nil)
