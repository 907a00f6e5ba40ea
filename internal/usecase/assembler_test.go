package usecase

import (
	"testing"
	"time"

	"resume-builder/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func date(s string) *time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return &t
}

func TestFormatDateRange(t *testing.T) {
	require.Equal(t, "- Present", FormatDateRange(nil, nil))
	require.Equal(t, "Sep 2020 - Present", FormatDateRange(date("2020-09-01"), nil))
	require.Equal(t, "Sep 2020 - May 2023", FormatDateRange(date("2020-09-01"), date("2023-05-15")))
	require.Equal(t, "- May 2023", FormatDateRange(nil, date("2023-05-15")))
}

func TestAssembleNameFallback(t *testing.T) {
	doc := Assemble(Identity{DisplayName: "Grace Hopper", Email: "grace@navy.mil"}, nil, nil, nil, nil)
	require.Equal(t, "Grace Hopper", doc.PersonalInfo.Name)

	doc = Assemble(Identity{Email: "grace@navy.mil"}, nil, nil, nil, nil)
	require.Equal(t, "grace@navy.mil", doc.PersonalInfo.Name)

	doc = Assemble(Identity{}, nil, nil, nil, nil)
	require.Equal(t, "", doc.PersonalInfo.Name)
}

func TestAssembleIdentityMetadata(t *testing.T) {
	doc := Assemble(Identity{
		Email: "dev@example.com",
		Metadata: map[string]string{
			"location": "Berlin",
			"phone":    "555-0100",
			"linkedin": "in/dev",
			"github":   "dev",
		},
	}, nil, nil, nil, nil)

	require.Equal(t, "Berlin", doc.PersonalInfo.Location)
	require.Equal(t, "555-0100", doc.PersonalInfo.Phone)
	require.Equal(t, "dev@example.com", doc.PersonalInfo.Email)
	require.Equal(t, "in/dev", doc.PersonalInfo.LinkedIn)
	require.Equal(t, "dev", doc.PersonalInfo.GitHub)
}

func TestAssembleSkillsBucketing(t *testing.T) {
	skills := []domain.Skill{
		{Name: "Go", Category: "Programming Languages"},
		{Name: "React", Category: "Frameworks & Libraries"},
		{Name: "X", Category: "Unknown"},
	}
	doc := Assemble(Identity{}, nil, nil, nil, skills)
	require.Equal(t, "Go", doc.Skills.Programming)
	require.Equal(t, "React", doc.Skills.Tools)
	require.Equal(t, "", doc.Skills.Other, "unknown categories are dropped, not folded into other")
}

func TestAssembleSkillsKeepSourceOrder(t *testing.T) {
	skills := []domain.Skill{
		{Name: "Rust", Category: CategoryProgramming},
		{Name: "Go", Category: CategoryProgramming},
		{Name: "Docker", Category: CategoryOther},
		{Name: "C", Category: CategoryProgramming},
	}
	doc := Assemble(Identity{}, nil, nil, nil, skills)
	require.Equal(t, "Rust, Go, C", doc.Skills.Programming)
	require.Equal(t, "Docker", doc.Skills.Other)
}

func TestAssemblePreservesExperienceOrder(t *testing.T) {
	loc := "Remote"
	experiences := []domain.Experience{
		{Company: "B Corp", Title: "Engineer", Location: &loc, StartDate: *date("2022-01-01")},
		{Company: "A Corp", Title: "Intern", StartDate: *date("2019-06-01"), EndDate: date("2019-09-01"), Bullets: []string{"built a thing"}},
	}
	doc := Assemble(Identity{}, experiences, nil, nil, nil)

	require.Len(t, doc.Experience, 2)
	require.Equal(t, "B Corp", doc.Experience[0].Company)
	require.Equal(t, "A Corp", doc.Experience[1].Company)
	require.Equal(t, "Jan 2022 - Present", doc.Experience[0].Dates)
	require.Equal(t, "Remote", doc.Experience[0].Location)
	require.Equal(t, []string{}, doc.Experience[0].Bullets, "absent bullets assemble to an empty slice")
	require.Equal(t, []string{"built a thing"}, doc.Experience[1].Bullets)
}

func TestAssembleEducation(t *testing.T) {
	gpa := 3.8
	education := []domain.Education{
		{Institution: "MIT", Degree: "BSc", GPA: &gpa, StartDate: *date("2018-09-01"), EndDate: date("2022-05-20")},
		{Institution: "Online", Degree: "Cert", StartDate: *date("2023-01-15")},
	}
	doc := Assemble(Identity{}, nil, nil, education, nil)

	require.Len(t, doc.Education, 2)
	require.Equal(t, "MIT", doc.Education[0].School)
	require.Equal(t, "Sep 2018 - May 2022", doc.Education[0].Dates)
	require.Equal(t, "3.8", doc.Education[0].GPA)
	require.Equal(t, "", doc.Education[0].Achievements)
	require.Equal(t, "", doc.Education[1].GPA)
	require.Equal(t, "Jan 2023 - Present", doc.Education[1].Dates)
}

func TestAssembleProjectsAndLeadership(t *testing.T) {
	projects := []domain.Project{
		{Name: "builder", Description: "a resume builder"},
	}
	doc := Assemble(Identity{}, nil, projects, nil, nil)

	require.Len(t, doc.Projects, 1)
	require.Equal(t, "builder", doc.Projects[0].Name)
	require.Equal(t, "", doc.Projects[0].Dates)
	require.NotNil(t, doc.Leadership)
	require.Empty(t, doc.Leadership, "leadership has no source collaborator and assembles empty")
}

func TestValidCategory(t *testing.T) {
	for _, c := range SkillCategories() {
		require.True(t, ValidCategory(c))
	}
	require.False(t, ValidCategory("Programming"))
	require.False(t, ValidCategory(""))
}

func TestAssembleEmptyInputsNeverNil(t *testing.T) {
	doc := Assemble(Identity{ID: uuid.New()}, nil, nil, nil, nil)
	require.NotNil(t, doc.Education)
	require.NotNil(t, doc.Experience)
	require.NotNil(t, doc.Projects)
	require.NotNil(t, doc.Leadership)
}
