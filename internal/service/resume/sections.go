package resume

import "strings"

// Section bucket names, in matching priority order: a line containing
// more than one keyword is filed only under the earliest bucket.
const (
	SectionEducation  = "Education"
	SectionExperience = "Experience"
	SectionSkills     = "Skills"
)

// sectionOrder pairs each bucket with its lower-cased keyword.
var sectionOrder = []struct {
	name    string
	keyword string
}{
	{SectionEducation, "education"},
	{SectionExperience, "experience"},
	{SectionSkills, "skills"},
}

// EmptySection is the placeholder for a bucket with no matching lines.
const EmptySection = "N/A"

// Sections maps each bucket name to its accumulated text.
type Sections map[string]string

// SectionNames returns the bucket names in priority order.
func SectionNames() []string {
	names := make([]string, len(sectionOrder))
	for i, s := range sectionOrder {
		names[i] = s.name
	}
	return names
}

// ParseSections buckets resume lines by case-insensitive keyword
// match. This is line-granularity keyword matching, not semantic
// section detection: a resume whose headers never mention the
// keywords yields three "N/A" buckets. Pure function of its input.
func ParseSections(text string) Sections {
	accum := map[string]*strings.Builder{}
	for _, s := range sectionOrder {
		accum[s.name] = &strings.Builder{}
	}

	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		for _, s := range sectionOrder {
			if strings.Contains(lower, s.keyword) {
				accum[s.name].WriteString(line)
				accum[s.name].WriteString("\n")
				break
			}
		}
	}

	sections := make(Sections, len(sectionOrder))
	for _, s := range sectionOrder {
		value := strings.TrimSpace(accum[s.name].String())
		if value == "" {
			value = EmptySection
		}
		sections[s.name] = value
	}
	return sections
}
