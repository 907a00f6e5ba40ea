package http

import (
	"context"
	"time"

	"resume-builder/internal/editor"
	"resume-builder/internal/middleware"
	"resume-builder/internal/preview"
	"resume-builder/internal/sessions"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// SessionStore is the server-session side of the auth flow.
type SessionStore interface {
	Create(ctx context.Context, s *sessions.Session) error
	Delete(ctx context.Context, token string) error
}

type Handler struct {
	experiences usecase.ExperienceRepo
	education   usecase.EducationRepo
	projects    usecase.ProjectRepo
	skills      usecase.SkillRepo
	users       usecase.UserRepo
	loader      *usecase.Loader
	editors     *editor.Store
	preview     *preview.Renderer
	pdf         usecase.Renderer
	sessions    SessionStore
	sessionTTL  time.Duration
}

type Deps struct {
	Experiences usecase.ExperienceRepo
	Education   usecase.EducationRepo
	Projects    usecase.ProjectRepo
	Skills      usecase.SkillRepo
	Users       usecase.UserRepo
	Loader      *usecase.Loader
	Editors     *editor.Store
	Preview     *preview.Renderer
	PDF         usecase.Renderer
	Sessions    SessionStore
	SessionTTL  time.Duration
}

func NewHandler(d Deps) *Handler {
	return &Handler{
		experiences: d.Experiences,
		education:   d.Education,
		projects:    d.Projects,
		skills:      d.Skills,
		users:       d.Users,
		loader:      d.Loader,
		editors:     d.Editors,
		preview:     d.Preview,
		pdf:         d.PDF,
		sessions:    d.Sessions,
		sessionTTL:  d.SessionTTL,
	}
}

// Register wires all routes. The API surface sits behind the auth gate; the
// login view and health check stay open.
func (h *Handler) Register(app *fiber.App) {
	// session exchange stays outside the auth gate; registered before the
	// group so the prefix middleware does not apply to it
	app.Post("/api/auth/session", h.CreateSession)
	app.Delete("/api/auth/session", h.DeleteSession)

	api := app.Group("/api", middleware.RequireAuth())

	api.Get("/experience", h.ListExperience)
	api.Post("/experience", h.CreateExperience)
	api.Put("/experience", h.UpdateExperience)
	api.Delete("/experience", h.DeleteExperience)

	api.Get("/education", h.ListEducation)
	api.Post("/education", h.CreateEducation)
	api.Put("/education", h.UpdateEducation)
	api.Delete("/education", h.DeleteEducation)

	api.Get("/project", h.ListProjects)
	api.Post("/project", h.CreateProject)
	api.Put("/project", h.UpdateProject)
	api.Delete("/project", h.DeleteProject)

	api.Get("/skills", h.ListSkills)
	api.Post("/skills", h.CreateSkills)
	api.Put("/skills", h.UpdateSkill)
	api.Delete("/skills", h.DeleteSkill)

	api.Get("/resume", h.GetResume)
	api.Post("/resume/reorder", h.ReorderSections)
	api.Post("/resume/toggle", h.ToggleSection)
	api.Patch("/resume/personal-info", h.UpdatePersonalInfo)
	api.Get("/resume/preview", h.PreviewResume)
	api.Post("/resume/export", h.ExportResume)
	api.Delete("/resume/session", h.DropEditorSession)

	app.Get("/login", h.LoginView)
	app.Get("/resume-editor", middleware.RequireView("/login"), h.PreviewResume)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
}

// identity returns the authenticated identity; routes behind RequireAuth
// always have one.
func identity(c *fiber.Ctx) usecase.Identity {
	id, _ := middleware.IdentityFrom(c)
	return id
}

// idParam reads the ?id= query parameter used by the delete endpoints.
func idParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Query("id"))
}

// parseDate accepts a bare date or a full timestamp; empty means absent.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// refreshEditor reassembles the active editor document after a CRUD write so
// the preview reflects persisted data. Order and expansion are untouched.
// No-op when the user has no editor session.
func (h *Handler) refreshEditor(ctx context.Context, id usecase.Identity) {
	ctrl := h.editors.Get(id.ID.String())
	if ctrl == nil {
		return
	}
	ctrl.ReplaceDocument(h.loader.Load(ctx, id))
}
