package editor

// ExpansionState maps section keys to expanded/collapsed. The mapping is not
// required to be total: an absent key means the section's default state.
type ExpansionState map[SectionKey]bool

// DefaultExpansion returns the initial per-session state. Sections start
// collapsed except personal info.
func DefaultExpansion() ExpansionState {
	return ExpansionState{SectionPersonalInfo: true}
}

// Expanded reports the effective state of key, applying the defaults for
// keys absent from the mapping.
func (s ExpansionState) Expanded(key SectionKey) bool {
	if v, ok := s[key]; ok {
		return v
	}
	return key == SectionPersonalInfo
}

// Toggle flips the stored boolean for key, treating an absent key as false
// first, so the first toggle of an unseen key always yields true. Pure: the
// input mapping is never mutated.
func Toggle(state ExpansionState, key SectionKey) ExpansionState {
	out := make(ExpansionState, len(state)+1)
	for k, v := range state {
		out[k] = v
	}
	out[key] = !out[key]
	return out
}
