package http

import (
	"errors"
	"strings"

	"resume-builder/internal/domain"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// skillsCreateReq is a batch: the form submits one category with a list of
// names, each becoming its own record.
type skillsCreateReq struct {
	Category string   `json:"category"`
	Skills   []string `json:"skills"`
}

type skillUpdateReq struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (h *Handler) ListSkills(c *fiber.Ctx) error {
	list, err := h.skills.List(c.Context(), identity(c).ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch skills"})
	}
	if list == nil {
		list = []domain.Skill{}
	}
	return c.JSON(list)
}

func (h *Handler) CreateSkills(c *fiber.Ctx) error {
	var req skillsCreateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if !usecase.ValidCategory(req.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown skill category"})
	}

	names := make([]string, 0, len(req.Skills))
	for _, n := range req.Skills {
		if s := strings.TrimSpace(n); s != "" {
			names = append(names, s)
		}
	}
	if len(names) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "At least one skill is required"})
	}

	id := identity(c)
	batch := make([]*domain.Skill, 0, len(names))
	for _, name := range names {
		batch = append(batch, &domain.Skill{UserID: id.ID, Name: name, Category: req.Category})
	}
	if err := h.skills.CreateBatch(c.Context(), batch); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create skills"})
	}

	created := make([]domain.Skill, 0, len(batch))
	for _, s := range batch {
		created = append(created, *s)
	}
	h.refreshEditor(c.Context(), id)
	return c.JSON(created)
}

func (h *Handler) UpdateSkill(c *fiber.Ctx) error {
	var req skillUpdateReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	entryID, err := uuid.Parse(req.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "name is required"})
	}
	if !usecase.ValidCategory(req.Category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unknown skill category"})
	}

	id := identity(c)
	s := domain.Skill{ID: entryID, UserID: id.ID, Name: req.Name, Category: req.Category}
	if err := h.skills.Update(c.Context(), &s); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "skill not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update skill"})
	}
	h.refreshEditor(c.Context(), id)
	return c.JSON(s)
}

func (h *Handler) DeleteSkill(c *fiber.Ctx) error {
	entryID, err := idParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Skill ID is required"})
	}
	id := identity(c)
	if err := h.skills.Delete(c.Context(), id.ID, entryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "skill not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete skill"})
	}
	h.refreshEditor(c.Context(), id)
	return c.JSON(fiber.Map{"message": "Skill deleted successfully"})
}
