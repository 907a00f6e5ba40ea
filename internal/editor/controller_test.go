package editor

import (
	"testing"

	"resume-builder/internal/model"

	"github.com/stretchr/testify/require"
)

func TestControllerReorderAndToggle(t *testing.T) {
	c := NewController(nil)

	c.ApplyReorder(Reordered{DraggedKey: SectionSkills, TargetKey: SectionEducation})
	c.ApplyToggle(Toggled{Key: SectionSkills})

	_, order, exp := c.Snapshot()
	require.Equal(t, SectionOrder{
		SectionPersonalInfo, SectionSkills, SectionEducation,
		SectionExperience, SectionProjects, SectionLeadership,
	}, order)
	require.True(t, exp.Expanded(SectionSkills))
}

func TestControllerFieldChanged(t *testing.T) {
	c := NewController(model.NewResumeDocument())

	require.NoError(t, c.ApplyFieldChanged(FieldChanged{Section: SectionPersonalInfo, Field: "name", Value: "Ada Lovelace"}))
	require.NoError(t, c.ApplyFieldChanged(FieldChanged{Section: SectionPersonalInfo, Field: "github", Value: "ada"}))

	doc, _, _ := c.Snapshot()
	require.Equal(t, "Ada Lovelace", doc.PersonalInfo.Name)
	require.Equal(t, "ada", doc.PersonalInfo.GitHub)
}

func TestControllerFieldChangedRejectsOtherSections(t *testing.T) {
	c := NewController(nil)
	err := c.ApplyFieldChanged(FieldChanged{Section: SectionExperience, Field: "company", Value: "Acme"})
	require.Error(t, err)

	err = c.ApplyFieldChanged(FieldChanged{Section: SectionPersonalInfo, Field: "salary", Value: "1"})
	require.Error(t, err)
}

func TestControllerSnapshotDoesNotAliasState(t *testing.T) {
	c := NewController(nil)
	_, order, exp := c.Snapshot()

	order[0] = SectionLeadership
	exp[SectionProjects] = true

	_, order2, exp2 := c.Snapshot()
	require.Equal(t, SectionPersonalInfo, order2[0])
	require.False(t, exp2.Expanded(SectionProjects))
}

func TestControllerReplaceDocumentKeepsLayout(t *testing.T) {
	c := NewController(nil)
	c.ApplyReorder(Reordered{DraggedKey: SectionLeadership, TargetKey: SectionPersonalInfo})
	c.ApplyToggle(Toggled{Key: SectionProjects})

	doc := model.NewResumeDocument()
	doc.Experience = []model.ExperienceEntry{{Company: "Acme", Position: "Engineer"}}
	c.ReplaceDocument(doc)

	got, order, exp := c.Snapshot()
	require.Len(t, got.Experience, 1)
	require.Equal(t, SectionLeadership, order[0])
	require.True(t, exp.Expanded(SectionProjects))
}

func TestControllerReplaceDocumentKeepsPersonalInfoEdits(t *testing.T) {
	c := NewController(nil)
	require.NoError(t, c.ApplyFieldChanged(FieldChanged{Section: SectionPersonalInfo, Field: "name", Value: "Edited Name"}))

	refetched := model.NewResumeDocument()
	refetched.PersonalInfo.Name = "Identity Name"
	refetched.Projects = []model.ProjectEntry{{Name: "builder", Description: "a resume builder"}}
	c.ReplaceDocument(refetched)

	got, _, _ := c.Snapshot()
	require.Equal(t, "Edited Name", got.PersonalInfo.Name, "a refetch must not revert direct-bind edits")
	require.Len(t, got.Projects, 1)
}

func TestControllerSnapshotDoesNotAliasDocumentSlices(t *testing.T) {
	doc := model.NewResumeDocument()
	doc.Experience = []model.ExperienceEntry{{Company: "Acme", Bullets: []string{"shipped"}}}
	c := NewController(doc)

	got, _, _ := c.Snapshot()
	got.Experience[0].Company = "Mutated"
	got.Experience[0].Bullets[0] = "mutated"

	got2, _, _ := c.Snapshot()
	require.Equal(t, "Acme", got2.Experience[0].Company)
	require.Equal(t, "shipped", got2.Experience[0].Bullets[0])
}

func TestStore(t *testing.T) {
	s := NewStore()
	require.Nil(t, s.Get("u1"))

	builds := 0
	c := s.GetOrCreate("u1", func() *Controller {
		builds++
		return NewController(nil)
	})
	require.Same(t, c, s.Get("u1"))

	again := s.GetOrCreate("u1", func() *Controller {
		builds++
		return NewController(nil)
	})
	require.Same(t, c, again, "an existing session is never replaced")
	require.Equal(t, 1, builds)

	s.Drop("u1")
	require.Nil(t, s.Get("u1"))
}
