package screening

import (
	"strings"

	"github.com/spigell/resume-ranker/internal/resume"
	"go.uber.org/zap"
)

type emptyTextFilter struct{}

// NewEmptyText creates a filter that drops resumes whose extracted text is
// blank. These are the candidates whose ingest failed or whose document holds
// no text layer; they are reported as excluded instead of aborting the batch.
func NewEmptyText() Filter {
	return &emptyTextFilter{}
}

func (f *emptyTextFilter) Name() string { return "empty-text" }

func (f *emptyTextFilter) IsEnabled() bool { return true }

func (f *emptyTextFilter) Apply(deps Deps, r *resume.Resumes) (*resume.Resumes, Step, error) {
	initial := r.Len()

	var empty []string
	for _, item := range r.Items {
		if strings.TrimSpace(item.Text) == "" {
			empty = append(empty, item.File)
		}
	}

	excluded := r.Exclude(empty)
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Warn("excluding unreadable resumes",
			zap.Strings("files", excluded),
			zap.Int("resumes_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(excluded), Left: r.Len()}, nil
}
