package editor

import "fmt"

// SectionKey identifies one resume section. It is the join key between
// order, expansion state and document data, and is stable for the whole
// editor session.
type SectionKey string

const (
	SectionPersonalInfo SectionKey = "personalInfo"
	SectionEducation    SectionKey = "education"
	SectionExperience   SectionKey = "experience"
	SectionProjects     SectionKey = "projects"
	SectionSkills       SectionKey = "skills"
	SectionLeadership   SectionKey = "leadership"
)

// SectionDescriptor describes one entry of the section registry. Icon is an
// opaque symbol name resolved by the client.
type SectionDescriptor struct {
	Key   SectionKey `json:"key"`
	Label string     `json:"label"`
	Icon  string     `json:"icon"`
}

// registry is the canonical ordered catalog of sections. Insertion order is
// the default section order.
var registry = []SectionDescriptor{
	{Key: SectionPersonalInfo, Label: "Personal Info", Icon: "user"},
	{Key: SectionEducation, Label: "Education", Icon: "graduation-cap"},
	{Key: SectionExperience, Label: "Experience", Icon: "briefcase"},
	{Key: SectionProjects, Label: "Projects", Icon: "folder-open"},
	{Key: SectionSkills, Label: "Technical Skills", Icon: "code"},
	{Key: SectionLeadership, Label: "Leadership", Icon: "trophy"},
}

// Registry returns a copy of the section catalog.
func Registry() []SectionDescriptor {
	out := make([]SectionDescriptor, len(registry))
	copy(out, registry)
	return out
}

// DefaultOrder returns the registry keys in catalog order.
func DefaultOrder() SectionOrder {
	order := make(SectionOrder, 0, len(registry))
	for _, d := range registry {
		order = append(order, d.Key)
	}
	return order
}

// ParseSectionKey rejects keys that are not part of the registry. Unknown
// keys never make it past the HTTP boundary.
func ParseSectionKey(s string) (SectionKey, error) {
	for _, d := range registry {
		if string(d.Key) == s {
			return d.Key, nil
		}
	}
	return "", fmt.Errorf("unknown section key %q", s)
}
