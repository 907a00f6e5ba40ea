package editor

// Editor interactions are modeled as explicit messages dispatched to the
// session controller, which applies the matching pure transition. This keeps
// the state machine testable independent of any UI wiring.

// Reordered is emitted at drag-end with the dragged key and the key whose
// position it takes. A cancelled drag (drop outside any target) emits no
// message at all.
type Reordered struct {
	DraggedKey SectionKey
	TargetKey  SectionKey
}

// Toggled flips one section between expanded and collapsed.
type Toggled struct {
	Key SectionKey
}

// FieldChanged carries a single direct-bind edit. Only the personal info
// section is live-edited in place; the other sections go through the CRUD
// services and a refetch instead.
type FieldChanged struct {
	Section SectionKey
	Field   string
	Value   string
}
