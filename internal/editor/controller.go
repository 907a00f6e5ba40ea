package editor

import (
	"fmt"
	"sync"

	"resume-builder/internal/model"
)

// Controller is the page-level owner of the three editor state slices:
// section order, expansion state and the assembled document. Nothing else
// holds a reference to them; handlers go through the controller's methods.
// A mutex serializes mutations, which is the server-side equivalent of the
// browser's single event loop: every interaction runs to completion before
// the next one is applied.
type Controller struct {
	mu        sync.Mutex
	order     SectionOrder
	expansion ExpansionState
	doc       *model.ResumeDocument
}

// NewController creates per-session state with the default order and
// expansion. The document is the session's assembled resume.
func NewController(doc *model.ResumeDocument) *Controller {
	if doc == nil {
		doc = model.NewResumeDocument()
	}
	return &Controller{
		order:     DefaultOrder(),
		expansion: DefaultExpansion(),
		doc:       doc,
	}
}

// ApplyReorder applies a drag-end message. Infallible: an unknown or equal
// key pair leaves the order unchanged.
func (c *Controller) ApplyReorder(ev Reordered) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order = Reorder(c.order, ev.DraggedKey, ev.TargetKey)
}

// ApplyToggle flips one section's expansion. Infallible.
func (c *Controller) ApplyToggle(ev Toggled) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expansion = Toggle(c.expansion, ev.Key)
}

// ApplyFieldChanged applies a direct-bind edit to the personal info slice of
// the document. Edits are synchronous, with no debounce and no validation
// beyond the field name check. Sections other than personal info are not
// live-edited and are rejected.
func (c *Controller) ApplyFieldChanged(ev FieldChanged) error {
	if ev.Section != SectionPersonalInfo {
		return fmt.Errorf("section %q is not direct-bind editable", ev.Section)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	pi := &c.doc.PersonalInfo
	switch ev.Field {
	case "name":
		pi.Name = ev.Value
	case "location":
		pi.Location = ev.Value
	case "phone":
		pi.Phone = ev.Value
	case "email":
		pi.Email = ev.Value
	case "linkedin":
		pi.LinkedIn = ev.Value
	case "github":
		pi.GitHub = ev.Value
	default:
		return fmt.Errorf("unknown personal info field %q", ev.Field)
	}
	return nil
}

// ReplaceDocument swaps in a freshly assembled document, used by the
// submit-and-refetch edit mode. Order and expansion are untouched, and so is
// the current personal info: reassembly derives it from the identity, which
// would revert direct-bind edits. Only the list sections come from the
// refetch.
func (c *Controller) ReplaceDocument(doc *model.ResumeDocument) {
	if doc == nil {
		doc = model.NewResumeDocument()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	doc.PersonalInfo = c.doc.PersonalInfo
	c.doc = doc
}

// Snapshot returns copies of the current state so callers can render without
// aliasing the controller's slices.
func (c *Controller) Snapshot() (model.ResumeDocument, SectionOrder, ExpansionState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	doc := *c.doc.Clone()
	exp := make(ExpansionState, len(c.expansion))
	for k, v := range c.expansion {
		exp[k] = v
	}
	return doc, c.order.Clone(), exp
}
