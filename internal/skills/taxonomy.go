package skills

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Taxonomy groups the recognized skill terms by category name. Categories are
// only used for configuration and display; matching works on the flattened
// vocabulary.
type Taxonomy map[string][]string

// DefaultTaxonomy returns the built-in vocabulary used when the configuration
// carries no taxonomy of its own.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		"languages":  {"python", "java", "c++", "javascript", "typescript", "html", "css"},
		"frameworks": {"react", "angular", "vue", "node", "django", "flask"},
		"databases":  {"sql", "mysql", "postgresql", "mongodb"},
		"infra":      {"aws", "azure", "docker", "kubernetes", "git", "linux"},
		"ml":         {"machine learning", "deep learning", "nlp", "tensorflow", "pytorch"},
	}
}

// DecodeTaxonomy converts the raw taxonomy mapping from the settings resource
// into a typed Taxonomy. A mapping that cannot be decoded is a configuration
// error the caller must refuse to run with.
func DecodeTaxonomy(raw map[string]any) (Taxonomy, error) {
	var taxonomy Taxonomy

	cfg := &mapstructure.DecoderConfig{
		Metadata:    nil,
		Result:      &taxonomy,
		ErrorUnused: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}

	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode taxonomy: %w", err)
	}

	return taxonomy, nil
}

// Terms flattens the taxonomy into a deduplicated, lowercased vocabulary.
// The slice is sorted so repeated calls produce the same order.
func (t Taxonomy) Terms() []string {
	seen := make(map[string]struct{})
	for _, terms := range t {
		for _, term := range terms {
			term = strings.ToLower(strings.TrimSpace(term))
			if term == "" {
				continue
			}
			seen[term] = struct{}{}
		}
	}

	flat := make([]string, 0, len(seen))
	for term := range seen {
		flat = append(flat, term)
	}
	sort.Strings(flat)

	return flat
}

// Categories returns the category names in sorted order.
func (t Taxonomy) Categories() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
