package resume

import (
	"encoding/json"
	"os"
	"time"
)

// ExcludedResumes is the persisted list of resumes to skip on later runs.
type ExcludedResumes struct {
	Items []*ExcludedResume
}

// ExcludedResume records one skipped resume and why it was skipped.
type ExcludedResume struct {
	File       string
	Reason     string
	ExcludedAt time.Time
}

// ToExcluded converts the batch into exclude-file entries with the given
// reason.
func (r *Resumes) ToExcluded(reason string) *ExcludedResumes {
	excluded := &ExcludedResumes{}
	for _, item := range r.Items {
		excluded.Items = append(excluded.Items, &ExcludedResume{
			File:       item.File,
			Reason:     reason,
			ExcludedAt: time.Now().UTC(),
		})
	}
	return excluded
}

// GetExcludedResumesFromFile loads the exclude file at path. An empty file
// yields an empty list.
func GetExcludedResumesFromFile(path string) (*ExcludedResumes, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	if stat.Size() == 0 {
		return &ExcludedResumes{}, nil
	}

	var excluded ExcludedResumes
	if err := json.NewDecoder(file).Decode(&excluded); err != nil {
		return nil, err
	}
	return &excluded, nil
}

// Append merges another exclude list into this one.
func (e *ExcludedResumes) Append(other *ExcludedResumes) {
	e.Items = append(e.Items, other.Items...)
}

// Files returns the excluded file names.
func (e *ExcludedResumes) Files() []string {
	files := make([]string, 0, len(e.Items))
	for _, item := range e.Items {
		files = append(files, item.File)
	}
	return files
}

// ToFile writes the exclude list as indented JSON to path.
func (e *ExcludedResumes) ToFile(path string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
