package http

import (
	"errors"
	"strings"

	"resume-builder/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// projectReq carries the project form payload: title maps to the stored
// name, liveUrl to projectUrl, and technologies arrives as one
// comma-separated string.
type projectReq struct {
	ID           string   `json:"id,omitempty"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	LiveURL      *string  `json:"liveUrl"`
	Technologies string   `json:"technologies"`
	Highlights   []string `json:"highlights"`
}

func (r *projectReq) toEntity(userID uuid.UUID) (*domain.Project, error) {
	if r.Title == "" || r.Description == "" {
		return nil, errors.New("Title and description are required")
	}
	stack := []string{}
	if r.Technologies != "" {
		for _, tech := range strings.Split(r.Technologies, ",") {
			stack = append(stack, strings.TrimSpace(tech))
		}
	}
	bullets := r.Highlights
	if bullets == nil {
		bullets = []string{}
	}
	return &domain.Project{
		UserID:      userID,
		Name:        r.Title,
		Description: r.Description,
		ProjectURL:  r.LiveURL,
		Stack:       stack,
		Bullets:     bullets,
	}, nil
}

func (h *Handler) ListProjects(c *fiber.Ctx) error {
	list, err := h.projects.List(c.Context(), identity(c).ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch projects"})
	}
	if list == nil {
		list = []domain.Project{}
	}
	return c.JSON(list)
}

func (h *Handler) CreateProject(c *fiber.Ctx) error {
	var req projectReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	id := identity(c)
	p, err := req.toEntity(id.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.projects.Create(c.Context(), p); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create project"})
	}
	h.refreshEditor(c.Context(), id)
	return c.JSON(p)
}

func (h *Handler) UpdateProject(c *fiber.Ctx) error {
	var req projectReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	entryID, err := uuid.Parse(req.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	id := identity(c)
	p, err := req.toEntity(id.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	p.ID = entryID
	if err := h.projects.Update(c.Context(), p); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "project not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update project"})
	}
	h.refreshEditor(c.Context(), id)
	return c.JSON(p)
}

func (h *Handler) DeleteProject(c *fiber.Ctx) error {
	entryID, err := idParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Project ID is required"})
	}
	id := identity(c)
	if err := h.projects.Delete(c.Context(), id.ID, entryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "project not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete project"})
	}
	h.refreshEditor(c.Context(), id)
	return c.JSON(fiber.Map{"message": "Project deleted successfully"})
}
