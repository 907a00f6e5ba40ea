package http

import (
	"errors"
	"strconv"

	"resume-builder/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type educationReq struct {
	ID          string `json:"id,omitempty"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	GPA         string `json:"gpa"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func (r *educationReq) toEntity(userID uuid.UUID) (*domain.Education, error) {
	if r.Institution == "" || r.Degree == "" {
		return nil, errors.New("institution and degree are required")
	}
	start, err := parseDate(r.StartDate)
	if err != nil || start == nil {
		return nil, errors.New("startDate is required")
	}
	end, err := parseDate(r.EndDate)
	if err != nil {
		return nil, errors.New("invalid endDate")
	}
	var gpa *float64
	if r.GPA != "" {
		v, err := strconv.ParseFloat(r.GPA, 64)
		if err != nil {
			return nil, errors.New("invalid gpa")
		}
		gpa = &v
	}
	return &domain.Education{
		UserID:      userID,
		Institution: r.Institution,
		Degree:      r.Degree,
		GPA:         gpa,
		StartDate:   *start,
		EndDate:     end,
	}, nil
}

func (h *Handler) ListEducation(c *fiber.Ctx) error {
	list, err := h.education.List(c.Context(), identity(c).ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch education"})
	}
	if list == nil {
		list = []domain.Education{}
	}
	return c.JSON(list)
}

func (h *Handler) CreateEducation(c *fiber.Ctx) error {
	var req educationReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	id := identity(c)
	e, err := req.toEntity(id.ID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := h.education.Create(c.Context(), e); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create education"})
	}
	h.refreshEditor(c.Context(), id)
	return c.JSON(e)
}

func (h *Handler) UpdateEducation(c *fiber.Ctx) error {
	var req educationReq
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
	if err := h.education.Update(c.Context(), e); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "education entry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update education"})
	}
	h.refreshEditor(c.Context(), id)
	return c.JSON(e)
}

func (h *Handler) DeleteEducation(c *fiber.Ctx) error {
	entryID, err := idParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Education ID is required"})
	}
	id := identity(c)
	if err := h.education.Delete(c.Context(), id.ID, entryID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "education entry not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete education"})
	}
	h.refreshEditor(c.Context(), id)
	return c.JSON(fiber.Map{"message": "Education deleted successfully"})
}
