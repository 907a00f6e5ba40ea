package model

// Go models that match the resume.schema.json used for validation and rendering.

type PersonalInfo struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

type EducationEntry struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	Dates        string `json:"dates"`
	GPA          string `json:"gpa"`
	Achievements string `json:"achievements"`
}

type ExperienceEntry struct {
	Company  string   `json:"company"`
	Position string   `json:"position"`
	Location string   `json:"location"`
	Dates    string   `json:"dates"`
	Bullets  []string `json:"bullets"`
}

type ProjectEntry struct {
	Name        string `json:"name"`
	Dates       string `json:"dates"`
	Description string `json:"description"`
}

type Skills struct {
	Programming string `json:"programming"`
	Tools       string `json:"tools"`
	Other       string `json:"other"`
}

type LeadershipEntry struct {
	Role  string   `json:"role"`
	Items []string `json:"items"`
}

// ResumeDocument is the in-memory aggregate behind the editor and preview.
// It is assembled once per editor session and is never partially null:
// absent source data maps to empty strings and empty slices.
type ResumeDocument struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Education    []EducationEntry  `json:"education"`
	Experience   []ExperienceEntry `json:"experience"`
	Projects     []ProjectEntry    `json:"projects"`
	Skills       Skills            `json:"skills"`
	Leadership   []LeadershipEntry `json:"leadership"`
}

// NewResumeDocument returns an empty document with non-nil slices.
func NewResumeDocument() *ResumeDocument {
	return &ResumeDocument{
		Education:  []EducationEntry{},
		Experience: []ExperienceEntry{},
		Projects:   []ProjectEntry{},
		Leadership: []LeadershipEntry{},
	}
}

// Clone returns a deep copy sharing no backing arrays with the receiver,
// including the per-entry bullet and item slices.
func (d *ResumeDocument) Clone() *ResumeDocument {
	out := *d
	out.Education = append([]EducationEntry(nil), d.Education...)
	out.Projects = append([]ProjectEntry(nil), d.Projects...)
	out.Experience = make([]ExperienceEntry, len(d.Experience))
	for i, e := range d.Experience {
		e.Bullets = append([]string(nil), e.Bullets...)
		out.Experience[i] = e
	}
	out.Leadership = make([]LeadershipEntry, len(d.Leadership))
	for i, l := range d.Leadership {
		l.Items = append([]string(nil), l.Items...)
		out.Leadership[i] = l
	}
	return &out
}
