package http

import (
	"errors"

	"resume-builder/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// experienceReq mirrors the editor form payload. The form historically sends
// jobTitle and achievements; title and bullets are accepted as aliases.
type experienceReq struct {
	ID           string   `json:"id,omitempty"`
	Company      string   `json:"company"`
	JobTitle     string   `json:"jobTitle"`
	Title        string   `json:"title"`
	Location     *string  `json:"location"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate"`
	Achievements []string `json:"achievements"`
}

func (r *experienceReq) toEntity(userID uuid.UUID) (*domain.Experience, error) {
	title := r.JobTitle
	if title == "" {
		title = r.Title
	}
	if r.Company == "" || title == "" {
		return nil, errors.New("company and title are required")
	}
	start, err := parseDate(r.StartDate)
	if err != nil || start == nil {
		return nil, errors.New("startDate is required")
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return nil, errors.New("invalid endDate")
	}
	bullets := r.Achievements
	if bullets == nil {
		bullets = []string{}
	}
	return &domain.Experience{
		UserID:    userID,
		Company:   r.Company,
		Title:     title,
		Location:  r.Location,
		StartDate: *start,
		EndDate:   end,
		Bullets:   bullets,
	}, nil
}

func (h *Handler) ListExperience(c *fiber.Ctx) error {
	list, err := h.experiences.List(c.Context(), identity(c).ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch experiences"})
	}
	if list == nil {
		list = []domain.Experience{}
	}
	return c.JSON(list)
}

func (h *Handler) CreateExperience(c *fiber.Ctx) error {
	var req experienceReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	id := identity(c)
	e, err := req.toEntity(id.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.experiences.Create(c.Context(), e); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create experience"})
	}
	h.refreshEditor(c.Context(), id)
	return c.JSON(e)
}

func (h *Handler) UpdateExperience(c *fiber.Ctx) error {
	var req experienceReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	entryID, err := uuid.Parse(req.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}
	id := identity(c)
	e, err := req.toEntity(id.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	e.ID = entryID
	if err := h.experiences.Update(c.Context(), e); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "experience not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update experience"})
	}
	h.refreshEditor(c.Context(), id)
	return c.JSON(e)
}

func (h *Handler) DeleteExperience(c *fiber.Ctx) error {
	entryID, err := idParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Experience ID is required"})
	}
	id := identity(c)
	if err := h.experiences.Delete(c.Context(), id.ID, entryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "experience not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete experience"})
	}
	h.refreshEditor(c.Context(), id)
	return c.JSON(fiber.Map{"message": "Experience deleted successfully"})
}
