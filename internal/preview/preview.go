package preview

import (
	"bytes"
	"html/template"
	"path/filepath"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"
)

// Fixed preview headings per section. Personal info renders as the header
// block instead of a headed section.
var headings = map[editor.SectionKey]string{
	editor.SectionEducation:  "EDUCATION",
	editor.SectionExperience: "EXPERIENCE",
	editor.SectionProjects:   "PROJECTS/OPEN SOURCE",
	editor.SectionSkills:     "TECHNICAL SKILLS",
	editor.SectionLeadership: "LEADERSHIPS",
}

// sectionView carries exactly one section's data into the template. Only the
// field matching Key is populated.
type sectionView struct {
	Key          editor.SectionKey
	Heading      string
	PersonalInfo *model.PersonalInfo
	Education    []model.EducationEntry
	Experience   []model.ExperienceEntry
	Projects     []model.ProjectEntry
	Skills       *model.Skills
	Leadership   []model.LeadershipEntry
}

type Renderer struct {
	tpl *template.Template
}

// NewRenderer parses the preview template from tplDir.
func NewRenderer(tplDir string) (*Renderer, error) {
	tpl, err := template.ParseFiles(filepath.Join(tplDir, "preview.html"))
	if err != nil {
		return nil, err
	}
	return &Renderer{tpl: tpl}, nil
}

// Render produces the preview HTML for the document in exactly the given
// section order. Entries within a section keep the document's order; nothing
// is reordered, filtered or mutated. A section with no entries still renders
// its heading.
func (r *Renderer) Render(doc model.ResumeDocument, order editor.SectionOrder) (string, error) {
	sections := make([]sectionView, 0, len(order))
	for _, key := range order {
		v := sectionView{Key: key, Heading: headings[key]}
		switch key {
		case editor.SectionPersonalInfo:
			pi := doc.PersonalInfo
			v.PersonalInfo = &pi
		case editor.SectionEducation:
			v.Education = doc.Education
		case editor.SectionExperience:
			v.Experience = doc.Experience
		case editor.SectionProjects:
			v.Projects = doc.Projects
		case editor.SectionSkills:
			sk := doc.Skills
			v.Skills = &sk
		case editor.SectionLeadership:
			v.Leadership = doc.Leadership
		}
		sections = append(sections, v)
	}

	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, map[string]interface{}{"Sections": sections}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
