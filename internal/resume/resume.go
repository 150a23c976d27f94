// Package resume holds the candidate document types and the batch operations
// the ranking flow works with.
package resume

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/spigell/resume-ranker/internal/skills"
)

// Score tiers used for reporting. Thresholds follow the recruiter-facing
// convention: above 75 is a standout, above 50 is worth screening.
const (
	TierTopTalent = "top talent"
	TierScreening = "screening"
	TierLowMatch  = "low match"
)

// Tier buckets a final score into a reporting tier.
func Tier(score float64) string {
	switch {
	case score > 75:
		return TierTopTalent
	case score > 50:
		return TierScreening
	default:
		return TierLowMatch
	}
}

// Resume is one candidate document with everything derived from it.
type Resume struct {
	File          string         `json:"file"`
	Text          string         `json:"-"`
	Contact       skills.Contact `json:"contact"`
	Skills        []string       `json:"skills,omitempty"`
	SkillsMatched []string       `json:"skills_matched,omitempty"`
	SkillsMissing []string       `json:"skills_missing,omitempty"`
	SectionsFound int            `json:"sections_found"`
	Cosine        float64        `json:"cosine"`
	Jaccard       float64        `json:"jaccard"`
	Score         float64        `json:"score"`
	Keywords      []string       `json:"keywords,omitempty"`
	Shortlisted   bool           `json:"shortlisted"`
}

// Resumes is an ordered candidate batch.
type Resumes struct {
	Items []*Resume `json:"items"`
}

func (r *Resumes) Len() int {
	return len(r.Items)
}

// Files returns the file names in batch order.
func (r *Resumes) Files() []string {
	files := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		files = append(files, item.File)
	}
	return files
}

// Texts returns the normalized candidate texts in batch order, ready for the
// similarity engine.
func (r *Resumes) Texts() []string {
	texts := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		texts = append(texts, item.Text)
	}
	return texts
}

// FindByFile returns the resume with the given file name, or nil.
func (r *Resumes) FindByFile(file string) *Resume {
	for _, item := range r.Items {
		if item.File == file {
			return item
		}
	}
	return nil
}

// Exclude removes the resumes whose file names appear in targets and returns
// the names actually removed.
func (r *Resumes) Exclude(targets []string) []string {
	drop := make(map[string]struct{}, len(targets))
	for _, name := range targets {
		drop[name] = struct{}{}
	}

	var excluded []string
	kept := r.Items[:0]
	for _, item := range r.Items {
		if _, ok := drop[item.File]; ok {
			excluded = append(excluded, item.File)
			continue
		}
		kept = append(kept, item)
	}
	r.Items = kept

	return excluded
}

// SortByScore orders the batch by final score, highest first. The sort is
// stable so equally scored resumes keep their ingest order.
func (r *Resumes) SortByScore() {
	sort.SliceStable(r.Items, func(i, j int) bool {
		return r.Items[i].Score > r.Items[j].Score
	})
}

// AverageScore returns the mean final score, or 0 for an empty batch.
func (r *Resumes) AverageScore() float64 {
	if len(r.Items) == 0 {
		return 0
	}
	sum := 0.0
	for _, item := range r.Items {
		sum += item.Score
	}
	return sum / float64(len(r.Items))
}

// ReportByTier groups the batch into scoring tiers for display.
func (r *Resumes) ReportByTier() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, item := range r.Items {
		key := Tier(item.Score)
		report[key] = append(report[key], map[string]string{
			"file":           item.File,
			"score":          fmt.Sprintf("%.2f", item.Score),
			"email":          item.Contact.Email,
			"phone":          item.Contact.Phone,
			"skills matched": strings.Join(item.SkillsMatched, ", "),
			"skills missing": strings.Join(item.SkillsMissing, ", "),
			"top keywords":   strings.Join(item.Keywords, ", "),
		})
	}
	return report
}

// DumpToTmpFile writes the batch as indented JSON to a temporary file and
// returns its name.
func (r *Resumes) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "resumes_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// ExportCSV writes the ranked shortlist to path. When top > 0 only the first
// top rows are written.
func (r *Resumes) ExportCSV(path string, top int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	header := []string{"file", "score", "cosine", "jaccard", "email", "phone", "skills_matched", "skills_missing", "keywords"}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, item := range r.Items {
		if top > 0 && i >= top {
			break
		}
		row := []string{
			item.File,
			strconv.FormatFloat(item.Score, 'f', 2, 64),
			strconv.FormatFloat(item.Cosine, 'f', 4, 64),
			strconv.FormatFloat(item.Jaccard, 'f', 4, 64),
			item.Contact.Email,
			item.Contact.Phone,
			strings.Join(item.SkillsMatched, "; "),
			strings.Join(item.SkillsMissing, "; "),
			strings.Join(item.Keywords, "; "),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
