package preview

import (
	"strings"
	"testing"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"

	"github.com/stretchr/testify/require"
)

func testDoc() model.ResumeDocument {
	doc := *model.NewResumeDocument()
	doc.PersonalInfo = model.PersonalInfo{Name: "Ada Lovelace", Email: "ada@example.com"}
	doc.Experience = []model.ExperienceEntry{
		{Company: "B Corp", Position: "Engineer", Dates: "Jan 2022 - Present", Bullets: []string{"first", "second"}},
		{Company: "A Corp", Position: "Intern", Dates: "Jun 2019 - Sep 2019", Bullets: []string{}},
	}
	doc.Skills = model.Skills{Programming: "Go, Rust"}
	return doc
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer("../../templates")
	require.NoError(t, err)
	return r
}

func TestRenderFollowsSectionOrder(t *testing.T) {
	r := newTestRenderer(t)

	order := editor.Reorder(editor.DefaultOrder(), editor.SectionSkills, editor.SectionEducation)
	html, err := r.Render(testDoc(), order)
	require.NoError(t, err)

	skillsAt := strings.Index(html, "TECHNICAL SKILLS")
	educationAt := strings.Index(html, "EDUCATION")
	experienceAt := strings.Index(html, "EXPERIENCE")
	require.Greater(t, skillsAt, 0)
	require.Greater(t, educationAt, skillsAt, "skills renders before education after the drag")
	require.Greater(t, experienceAt, educationAt)
}

func TestRenderKeepsEntryOrder(t *testing.T) {
	r := newTestRenderer(t)

	html, err := r.Render(testDoc(), editor.DefaultOrder())
	require.NoError(t, err)

	require.Less(t, strings.Index(html, "B Corp"), strings.Index(html, "A Corp"), "entries keep source order")
	require.Less(t, strings.Index(html, "first"), strings.Index(html, "second"))
}

func TestRenderEmptySectionKeepsHeading(t *testing.T) {
	r := newTestRenderer(t)

	doc := *model.NewResumeDocument()
	html, err := r.Render(doc, editor.DefaultOrder())
	require.NoError(t, err)

	for _, heading := range []string{"EDUCATION", "EXPERIENCE", "PROJECTS/OPEN SOURCE", "TECHNICAL SKILLS", "LEADERSHIPS"} {
		require.Contains(t, html, heading)
	}
}

func TestRenderHeaderBlock(t *testing.T) {
	r := newTestRenderer(t)

	html, err := r.Render(testDoc(), editor.DefaultOrder())
	require.NoError(t, err)
	require.Contains(t, html, "Ada Lovelace")
	require.Contains(t, html, "mailto:ada@example.com")
	require.Contains(t, html, "Go, Rust")
}

func TestRenderEscapesUserContent(t *testing.T) {
	r := newTestRenderer(t)

	doc := testDoc()
	doc.Experience[0].Company = `<script>alert("x")</script>`
	html, err := r.Render(doc, editor.DefaultOrder())
	require.NoError(t, err)
	require.NotContains(t, html, "<script>alert")
}
