package usecase

import (
	"strconv"
	"strings"
	"time"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"

	"github.com/google/uuid"
)

// Skill categories recognized at assembly time. The CRUD side validates
// incoming categories against this set so stored values stay consistent
// with the three preview buckets. Records with any other category are
// dropped from the assembled document, not folded into "other".
const (
	CategoryProgramming = "Programming Languages"
	CategoryTools       = "Frameworks & Libraries"
	CategoryOther       = "DevOps & Cloud"
)

// SkillCategories lists the accepted category labels in display order.
func SkillCategories() []string {
	return []string{CategoryProgramming, CategoryTools, CategoryOther}
}

// ValidCategory reports whether c is one of the fixed category labels.
func ValidCategory(c string) bool {
	return c == CategoryProgramming || c == CategoryTools || c == CategoryOther
}

// Identity is what the auth collaborator knows about the current user.
// Metadata carries the optional profile fields (location, phone, linkedin,
// github) some identity providers attach to the account.
type Identity struct {
	ID          uuid.UUID
	DisplayName string
	Email       string
	Metadata    map[string]string
}

// FormatDateRange renders a start/end pair as "Sep 2020 - May 2023". A nil
// end renders as "Present"; a nil start renders as an empty string with the
// separator kept, so a fully absent range reads "- Present".
func FormatDateRange(start, end *time.Time) string {
	e := "Present"
	if end != nil {
		e = end.Format("Jan 2006")
	}
	if start == nil {
		return "- " + e
	}
	return start.Format("Jan 2006") + " - " + e
}

// Assemble builds the unified resume document from the authenticated
// identity and the four fetched collections. Inputs may be empty but never
// nil-significant: an empty slice assembles to an empty section. List order
// is preserved exactly; nothing is resorted.
func Assemble(identity Identity, experiences []domain.Experience, projects []domain.Project, education []domain.Education, skills []domain.Skill) *model.ResumeDocument {
	doc := model.NewResumeDocument()

	name := identity.DisplayName
	if name == "" {
		name = identity.Email
	}
	doc.PersonalInfo = model.PersonalInfo{
		Name:     name,
		Location: identity.Metadata["location"],
		Phone:    identity.Metadata["phone"],
		Email:    identity.Email,
		LinkedIn: identity.Metadata["linkedin"],
		GitHub:   identity.Metadata["github"],
	}

	for _, e := range education {
		gpa := ""
		if e.GPA != nil {
			gpa = strconv.FormatFloat(*e.GPA, 'f', -1, 64)
		}
		doc.Education = append(doc.Education, model.EducationEntry{
			School: e.Institution,
			Degree: e.Degree,
			Dates:  FormatDateRange(&e.StartDate, e.EndDate),
			GPA:    gpa,
		})
	}

	for _, e := range experiences {
		bullets := e.Bullets
		if bullets == nil {
			bullets = []string{}
		}
		location := ""
		if e.Location != nil {
			location = *e.Location
		}
		doc.Experience = append(doc.Experience, model.ExperienceEntry{
			Company:  e.Company,
			Position: e.Title,
			Location: location,
			Dates:    FormatDateRange(&e.StartDate, e.EndDate),
			Bullets:  bullets,
		})
	}

	for _, p := range projects {
		doc.Projects = append(doc.Projects, model.ProjectEntry{
			Name:        p.Name,
			Description: p.Description,
		})
	}

	var programming, tools, other []string
	for _, s := range skills {
		switch s.Category {
		case CategoryProgramming:
			programming = append(programming, s.Name)
		case CategoryTools:
			tools = append(tools, s.Name)
		case CategoryOther:
			other = append(other, s.Name)
		}
	}
	doc.Skills = model.Skills{
		Programming: strings.Join(programming, ", "),
		Tools:       strings.Join(tools, ", "),
		Other:       strings.Join(other, ", "),
	}

	// No source collaborator exists for leadership; it assembles empty.
	doc.Leadership = []model.LeadershipEntry{}

	return doc
}
