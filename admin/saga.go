package admin

import (
	"context"
	"strings"

	"github.com/ariebrainware/healthghar/metrics"
	"github.com/ariebrainware/healthghar/util"
)

// FailurePolicy decides what a saga does after a step fails.
type FailurePolicy int

const (
	// AbortOnFailure stops at the first failed step.
	AbortOnFailure FailurePolicy = iota
	// ContinueOnFailure runs every step and reports the failures.
	ContinueOnFailure
)

func (p FailurePolicy) String() string {
	if p == ContinueOnFailure {
		return "continue"
	}
	return "abort"
}

// PolicyFor parses DOCTOR_DELETE_POLICY. Anything but "continue" aborts.
func PolicyFor(name string) FailurePolicy {
	if strings.EqualFold(strings.TrimSpace(name), "continue") {
		return ContinueOnFailure
	}
	return AbortOnFailure
}

// SagaStep is one named action of a saga.
type SagaStep struct {
	Name string
	Run  func(ctx context.Context) error
}

type StepFailure struct {
	Step  string `json:"step"`
	Error string `json:"error"`
}

// SagaReport lists what a saga did.
type SagaReport struct {
	Completed []string      `json:"completed"`
	Failed    []StepFailure `json:"failed"`
	Skipped   []string      `json:"skipped"`
}

// OK reports whether every step completed.
func (r SagaReport) OK() bool { return len(r.Failed) == 0 && len(r.Skipped) == 0 }

// Saga runs steps in order without compensation.
type Saga struct {
	Name   string
	Policy FailurePolicy
	Steps  []SagaStep
}

// Run executes the steps. Every failure is logged; with AbortOnFailure the
// remaining steps are reported as skipped.
func (s Saga) Run(ctx context.Context) SagaReport {
	l := util.Component("saga")
	report := SagaReport{Completed: []string{}, Failed: []StepFailure{}, Skipped: []string{}}
	for i, step := range s.Steps {
		if err := step.Run(ctx); err != nil {
			metrics.SagaSteps.WithLabelValues(s.Name, step.Name, "error").Inc()
			l.Error().Err(err).Str("saga", s.Name).Str("step", step.Name).Str("policy", s.Policy.String()).Msg("saga step failed")
			report.Failed = append(report.Failed, StepFailure{Step: step.Name, Error: err.Error()})
			if s.Policy == AbortOnFailure {
				for _, rest := range s.Steps[i+1:] {
					report.Skipped = append(report.Skipped, rest.Name)
				}
				return report
			}
			continue
		}
		metrics.SagaSteps.WithLabelValues(s.Name, step.Name, "ok").Inc()
		report.Completed = append(report.Completed, step.Name)
	}
	return report
}
