package usecase

import (
	"context"
	"log/slog"
	"sync"

	"resume-builder/internal/domain"
	"resume-builder/internal/model"
)

// Loader gathers the four entity collections for a user and assembles the
// resume document.
type Loader struct {
	experiences ExperienceRepo
	education   EducationRepo
	projects    ProjectRepo
	skills      SkillRepo
}

func NewLoader(exp ExperienceRepo, edu EducationRepo, proj ProjectRepo, skill SkillRepo) *Loader {
	return &Loader{experiences: exp, education: edu, projects: proj, skills: skill}
}

// Load issues the four list fetches concurrently and assembles once all of
// them have settled, so the caller never sees a partially built document. A
// failed fetch contributes an empty slice and does not abort the others.
func (l *Loader) Load(ctx context.Context, identity Identity) *model.ResumeDocument {
	var (
		wg          sync.WaitGroup
		experiences []domain.Experience
		education   []domain.Education
		projects    []domain.Project
		skills      []domain.Skill
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		var err error
		if experiences, err = l.experiences.List(ctx, identity.ID); err != nil {
			slog.Warn("experience fetch failed, assembling empty", "user", identity.ID, "error", err)
			experiences = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if education, err = l.education.List(ctx, identity.ID); err != nil {
			slog.Warn("education fetch failed, assembling empty", "user", identity.ID, "error", err)
			education = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if projects, err = l.projects.List(ctx, identity.ID); err != nil {
			slog.Warn("project fetch failed, assembling empty", "user", identity.ID, "error", err)
			projects = nil
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if skills, err = l.skills.List(ctx, identity.ID); err != nil {
			slog.Warn("skill fetch failed, assembling empty", "user", identity.ID, "error", err)
			skills = nil
		}
	}()
	wg.Wait()

	return Assemble(identity, experiences, projects, education, skills)
}
