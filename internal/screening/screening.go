// Package screening runs the candidate batch through an ordered set of
// filters before scoring. A filter drops resumes that cannot or should not be
// scored; the rest of the batch always continues.
package screening

import (
	"fmt"

	"github.com/spigell/resume-ranker/internal/resume"
	"go.uber.org/zap"
)

// Filter is a single screening step applied to the batch.
type Filter interface {
	Name() string
	IsEnabled() bool
	Apply(deps Deps, r *resume.Resumes) (*resume.Resumes, Step, error)
}

// Deps aggregates dependencies shared across all screening steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a screening step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Run executes the supplied filters sequentially and returns the remaining
// batch.
func Run(deps Deps, steps []Filter, r *resume.Resumes) (*resume.Resumes, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("screening step disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(deps, r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("screening step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		r = next
	}

	return r, nil
}
