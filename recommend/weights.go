package recommend

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// ErrConfigWarning wraps every non-fatal problem found while reading weights.
var ErrConfigWarning = errors.New("weights config")

// Weights scale the letter-state and exploration terms of the score.
type Weights struct {
	Green            float64 `yaml:"green" json:"green"`
	Yellow           float64 `yaml:"yellow" json:"yellow"`
	Gray             float64 `yaml:"gray" json:"gray"`
	Unused           float64 `yaml:"unused" json:"unused"`
	Exploration      float64 `yaml:"exploration" json:"exploration"`
	DuplicatePenalty float64 `yaml:"duplicate_penalty" json:"duplicate_penalty"`
}

func DefaultWeights() Weights {
	return Weights{
		Green:            10,
		Yellow:           5,
		Gray:             -5,
		Unused:           8,
		Exploration:      12,
		DuplicatePenalty: 15,
	}
}

func (w *Weights) field(key string) *float64 {
	switch key {
	case "green":
		return &w.Green
	case "yellow":
		return &w.Yellow
	case "gray":
		return &w.Gray
	case "unused":
		return &w.Unused
	case "exploration":
		return &w.Exploration
	case "duplicate_penalty":
		return &w.DuplicatePenalty
	}
	return nil
}

// LoadWeights reads a weights document from path. It never fails: a missing
// or malformed file yields the defaults, and every problem is returned as a
// warning wrapping ErrConfigWarning.
func LoadWeights(path string) (Weights, []error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultWeights(), []error{fmt.Errorf("%w: reading %s: %v", ErrConfigWarning, path, err)}
	}
	return ParseWeights(data)
}

// ParseWeights decodes a YAML or JSON mapping of weight names to numbers.
func ParseWeights(data []byte) (Weights, []error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return DefaultWeights(), []error{fmt.Errorf("%w: malformed document: %v", ErrConfigWarning, err)}
	}
	return WeightsFromMap(raw)
}

// WeightsFromMap starts from the defaults and overrides each recognized key
// holding a number. Unknown keys are ignored.
func WeightsFromMap(raw map[string]any) (Weights, []error) {
	w := DefaultWeights()
	var warnings []error

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		dst := w.field(k)
		if dst == nil {
			continue
		}
		switch v := raw[k].(type) {
		case int:
			*dst = float64(v)
		case int64:
			*dst = float64(v)
		case uint64:
			*dst = float64(v)
		case float64:
			*dst = v
		default:
			warnings = append(warnings, fmt.Errorf("%w: invalid type %T for %q, using default", ErrConfigWarning, v, k))
		}
	}
	return w, warnings
}
