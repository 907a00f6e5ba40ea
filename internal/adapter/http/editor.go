package http

import (
	"log/slog"

	"resume-builder/internal/editor"
	"resume-builder/internal/model"

	"github.com/gofiber/fiber/v2"
)

// editorState is the payload the editor page works against.
type editorState struct {
	Document         model.ResumeDocument       `json:"document"`
	SectionOrder     editor.SectionOrder        `json:"sectionOrder"`
	ExpandedSections map[string]bool            `json:"expandedSections"`
	Registry         []editor.SectionDescriptor `json:"registry"`
}

func expansionJSON(exp editor.ExpansionState) map[string]bool {
	out := make(map[string]bool, len(exp))
	for _, d := range editor.Registry() {
		out[string(d.Key)] = exp.Expanded(d.Key)
	}
	return out
}

// session returns the caller's editor controller, assembling the document on
// first access. Assembly waits for all four fetches; a failed fetch shows up
// as an empty section, never as a failed page.
func (h *Handler) session(c *fiber.Ctx) *editor.Controller {
	id := identity(c)
	return h.editors.GetOrCreate(id.ID.String(), func() *editor.Controller {
		return editor.NewController(h.loader.Load(c.Context(), id))
	})
}

func (h *Handler) GetResume(c *fiber.Ctx) error {
	doc, order, exp := h.session(c).Snapshot()
	return c.JSON(editorState{
		Document:         doc,
		SectionOrder:     order,
		ExpandedSections: expansionJSON(exp),
		Registry:         editor.Registry(),
	})
}

type reorderReq struct {
	DraggedKey string `json:"draggedKey"`
	TargetKey  string `json:"targetKey"`
}

// ReorderSections applies a drag-end. Unknown keys are rejected here at the
// boundary; past it the move itself cannot fail.
func (h *Handler) ReorderSections(c *fiber.Ctx) error {
	var req reorderReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	dragged, err := editor.ParseSectionKey(req.DraggedKey)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	target, err := editor.ParseSectionKey(req.TargetKey)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctrl := h.session(c)
	ctrl.ApplyReorder(editor.Reordered{DraggedKey: dragged, TargetKey: target})
	_, order, _ := ctrl.Snapshot()
	return c.JSON(fiber.Map{"sectionOrder": order})
}

type toggleReq struct {
	Key string `json:"key"`
}

func (h *Handler) ToggleSection(c *fiber.Ctx) error {
	var req toggleReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	key, err := editor.ParseSectionKey(req.Key)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ctrl := h.session(c)
	ctrl.ApplyToggle(editor.Toggled{Key: key})
	_, _, exp := ctrl.Snapshot()
	return c.JSON(fiber.Map{"expandedSections": expansionJSON(exp)})
}

type fieldChangeReq struct {
	Section string `json:"section"`
	Field   string `json:"field"`
	Value   string `json:"value"`
}

// UpdatePersonalInfo is the direct-bind edit path. Only the personal info
// section supports it; everything else goes through the CRUD endpoints and
// a document refresh.
func (h *Handler) UpdatePersonalInfo(c *fiber.Ctx) error {
	var req fieldChangeReq
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	section := editor.SectionPersonalInfo
	if req.Section != "" {
		var err error
		if section, err = editor.ParseSectionKey(req.Section); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
	}

	ctrl := h.session(c)
	if err := ctrl.ApplyFieldChanged(editor.FieldChanged{Section: section, Field: req.Field, Value: req.Value}); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	doc, _, _ := ctrl.Snapshot()
	return c.JSON(fiber.Map{"personalInfo": doc.PersonalInfo})
}

func (h *Handler) PreviewResume(c *fiber.Ctx) error {
	doc, order, _ := h.session(c).Snapshot()
	html, err := h.preview.Render(doc, order)
	if err != nil {
		slog.Error("preview render failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render preview"})
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// ExportResume prints the current preview to PDF. The document is checked
// against the resume schema first.
func (h *Handler) ExportResume(c *fiber.Ctx) error {
	doc, order, _ := h.session(c).Snapshot()
	if err := model.ValidateDocument(&doc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	html, err := h.preview.Render(doc, order)
	if err != nil {
		slog.Error("preview render failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render preview"})
	}
	pdf, err := h.pdf.RenderHTMLToPDF(c.Context(), html)
	if err != nil {
		slog.Error("pdf export failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to export PDF"})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	return c.Send(pdf)
}

// DropEditorSession discards the in-memory editor state on page teardown.
func (h *Handler) DropEditorSession(c *fiber.Ctx) error {
	h.editors.Drop(identity(c).ID.String())
	return c.SendStatus(fiber.StatusNoContent)
}
