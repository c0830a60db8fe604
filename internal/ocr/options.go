package ocr

import (
	"fmt"
	"strings"
)

// DefaultLanguage is used when no language tag is supplied.
const DefaultLanguage = "en-US"

// Level selects the recognition quality/latency trade-off.
type Level int

const (
	// LevelAccurate favors recognition quality. It is the default.
	LevelAccurate Level = iota

	// LevelFast favors low latency over quality.
	LevelFast
)

func (l Level) String() string {
	switch l {
	case LevelFast:
		return "fast"
	case LevelAccurate:
		return "accurate"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// ParseLevel converts a case-insensitive level name to a Level. The empty
// string selects the default, LevelAccurate.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "", "accurate":
		return LevelAccurate, nil
	case "fast":
		return LevelFast, nil
	default:
		return LevelAccurate, fmt.Errorf("unknown recognition level: %q", s)
	}
}

// Options configures one recognition pass. Options are value types: each
// invocation receives its own copy and concurrent passes never share one.
type Options struct {
	// Languages is an ordered list of language tags (e.g. "en-US",
	// "zh-Hans") passed through to the recognition capability. Empty means
	// a single DefaultLanguage entry.
	Languages []string

	// Level selects fast or accurate recognition.
	Level Level

	// MinConfidence is the candidate-acceptance floor, 0.0-1.0. Candidates
	// below the floor are never selected.
	MinConfidence float64
}

// DefaultOptions returns the options used when a caller supplies none.
func DefaultOptions() Options {
	return Options{
		Languages: []string{DefaultLanguage},
		Level:     LevelAccurate,
	}
}

// normalized returns a copy with defaults filled in.
func (o Options) normalized() Options {
	if len(o.Languages) == 0 {
		o.Languages = []string{DefaultLanguage}
	}
	return o
}

// BatchOptions configures a batch recognition call.
type BatchOptions struct {
	Options

	// MaxConcurrency bounds the number of simultaneously running
	// recognition passes. Zero or negative selects the available hardware
	// parallelism.
	MaxConcurrency int

	// BatchSize is an advisory sizing hint with no behavioral contract.
	BatchSize int
}
