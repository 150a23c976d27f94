package resume

import (
	"regexp"
	"strings"
)

// Section names produced by Segment.
const (
	SectionFullText   = "full_text"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionProjects   = "projects"
)

// sectionPatterns is ordered: the first pattern matching a line wins and the
// remaining ones are not tested for that line.
var sectionPatterns = []struct {
	name    string
	pattern *regexp.Regexp
}{
	{SectionExperience, regexp.MustCompile(`experience|work history|employment|professional background`)},
	{SectionEducation, regexp.MustCompile(`education|academic|certification|degree`)},
	{SectionSkills, regexp.MustCompile(`technical skills|competencies|expertise|tools`)},
	{SectionProjects, regexp.MustCompile(`projects|personal work|portfolio`)},
}

// Sections maps a section name to the text accumulated under it.
type Sections map[string]string

// Segment splits raw resume text into named sections by scanning line by
// line for header-like patterns. A matching line switches the current section
// before the line is appended, so a header counts as content of the section
// it introduces. Lines are matched lowercased but appended in their original
// form, each followed by a single space.
//
// Known quirk: the cursor starts at full_text, so full_text stops
// accumulating as soon as the first section header appears and ends up
// holding only the preamble. Callers needing the complete document must keep
// the raw text they passed in; they cannot recover it from full_text.
func Segment(raw string) Sections {
	sections := Sections{
		SectionFullText:   "",
		SectionExperience: "",
		SectionEducation:  "",
		SectionSkills:     "",
		SectionProjects:   "",
	}

	current := SectionFullText
	for _, line := range strings.Split(raw, "\n") {
		clean := strings.ToLower(strings.TrimSpace(line))
		for _, sp := range sectionPatterns {
			if sp.pattern.MatchString(clean) {
				current = sp.name
				break
			}
		}
		sections[current] += line + " "
	}

	return sections
}

// Found reports how many named sections (other than full_text) accumulated
// any text.
func (s Sections) Found() int {
	count := 0
	for name, content := range s {
		if name == SectionFullText {
			continue
		}
		if strings.TrimSpace(content) != "" {
			count++
		}
	}
	return count
}
