package screening

import (
	"errors"
	"io/fs"

	"github.com/spigell/resume-ranker/internal/resume"
	"go.uber.org/zap"
)

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that drops resumes listed in the JSON
// exclude file at path. The filter is disabled when no path is configured;
// a missing file means nothing has been excluded yet.
func NewExcludeFile(path string) Filter {
	return &excludeFileFilter{path: path}
}

func (f *excludeFileFilter) Name() string { return "exclude-file" }

func (f *excludeFileFilter) IsEnabled() bool { return f.path != "" }

func (f *excludeFileFilter) Apply(deps Deps, r *resume.Resumes) (*resume.Resumes, Step, error) {
	initial := r.Len()

	excludedList, err := resume.GetExcludedResumesFromFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return r, Step{Initial: initial, Left: r.Len()}, nil
		}
		return nil, Step{}, err
	}

	excluded := r.Exclude(excludedList.Files())
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding resumes from exclude file",
			zap.String("filename", f.path),
			zap.Strings("files", excluded),
			zap.Int("resumes_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(excluded), Left: r.Len()}, nil
}
