// Package crosscheck validates CPU time readings against an
// independent source.
package crosscheck

import (
	"fmt"
	"math"
	"sort"

	"github.com/shirou/gopsutil/v4/cpu"

	"github.com/danpilch/cpustat/pkg/cpustats"
)

// Status indicates the confidence level of a cross-checked metric.
type Status string

const (
	StatusValid    Status = "valid"
	StatusSuspect  Status = "suspect"
	StatusConflict Status = "conflict"
)

// Source represents a single reading of a metric from one source.
type Source struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Result holds the cross-check outcome for one metric.
type Result struct {
	Metric       string   `json:"metric"`
	Sources      []Source `json:"sources"`
	Consensus    float64  `json:"consensus"`
	MaxDeviation float64  `json:"max_deviation"`
	Status       Status   `json:"status"`
}

// Validator cross-checks a metric reported by multiple sources.
type Validator struct {
	SuspectThreshold  float64 // deviation % to mark suspect
	ConflictThreshold float64 // deviation % to mark conflict
}

// NewValidator creates a validator with default thresholds.
func NewValidator() *Validator {
	return &Validator{
		SuspectThreshold:  5.0,
		ConflictThreshold: 20.0,
	}
}

// Compare validates a metric by comparing values from multiple
// sources. Consensus is the median; deviation is measured against it.
// A negative reading from any source is an immediate conflict, since
// CPU time counters can never run backwards.
func (v *Validator) Compare(metric string, sources []Source) Result {
	result := Result{
		Metric:  metric,
		Sources: sources,
		Status:  StatusValid,
	}

	if len(sources) == 0 {
		return result
	}

	for _, s := range sources {
		if s.Value < 0 {
			result.Status = StatusConflict
			result.MaxDeviation = 100.0
			return result
		}
	}

	if len(sources) == 1 {
		result.Consensus = sources[0].Value
		return result
	}

	values := make([]float64, len(sources))
	for i, s := range sources {
		values[i] = s.Value
	}
	sort.Float64s(values)

	if len(values)%2 == 0 {
		result.Consensus = (values[len(values)/2-1] + values[len(values)/2]) / 2
	} else {
		result.Consensus = values[len(values)/2]
	}

	for _, val := range values {
		if result.Consensus == 0 {
			if val != 0 {
				result.MaxDeviation = 100.0
			}
			continue
		}
		dev := math.Abs(val-result.Consensus) / result.Consensus * 100
		if dev > result.MaxDeviation {
			result.MaxDeviation = dev
		}
	}

	if result.MaxDeviation >= v.ConflictThreshold {
		result.Status = StatusConflict
	} else if result.MaxDeviation >= v.SuspectThreshold {
		result.Status = StatusSuspect
	}

	return result
}

// Run reads aggregate CPU time via this library and via gopsutil and
// cross-checks the user and system totals against each other.
func Run() ([]Result, error) {
	stats, err := cpustats.Read()
	if err != nil {
		return nil, fmt.Errorf("read cpu stats: %w", err)
	}

	times, err := cpu.Times(false)
	if err != nil {
		return nil, fmt.Errorf("gopsutil cpu times: %w", err)
	}
	if len(times) == 0 {
		return nil, fmt.Errorf("gopsutil returned no aggregate cpu times")
	}

	validator := NewValidator()
	results := []Result{
		validator.Compare("User CPU Time", []Source{
			{Name: "cpustats", Value: stats.User.Seconds(), Unit: "s"},
			{Name: "gopsutil", Value: times[0].User, Unit: "s"},
		}),
		validator.Compare("System CPU Time", []Source{
			{Name: "cpustats", Value: stats.System.Seconds(), Unit: "s"},
			{Name: "gopsutil", Value: times[0].System, Unit: "s"},
		}),
	}
	return results, nil
}
