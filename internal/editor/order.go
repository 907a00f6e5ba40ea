package editor

// SectionOrder is a permutation of the registry keys: every key exactly
// once, no foreign keys.
type SectionOrder []SectionKey

// IndexOf returns the position of key in the order, or -1.
func (o SectionOrder) IndexOf(key SectionKey) int {
	for i, k := range o {
		if k == key {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of the order.
func (o SectionOrder) Clone() SectionOrder {
	out := make(SectionOrder, len(o))
	copy(out, o)
	return out
}

// IsPermutationOf reports whether o and other contain the same key multiset.
func (o SectionOrder) IsPermutationOf(other SectionOrder) bool {
	if len(o) != len(other) {
		return false
	}
	counts := make(map[SectionKey]int, len(o))
	for _, k := range o {
		counts[k]++
	}
	for _, k := range other {
		counts[k]--
		if counts[k] < 0 {
			return false
		}
	}
	return true
}

// Reorder moves draggedKey to the position currently occupied by targetKey:
// an array-move, not a swap. Elements between the two positions shift one
// step toward the vacated slot. If the keys are equal, or either key is not
// a member of the order, the order is returned unchanged. Pure: the input
// is never mutated.
func Reorder(order SectionOrder, draggedKey, targetKey SectionKey) SectionOrder {
	if draggedKey == targetKey {
		return order
	}
	from := order.IndexOf(draggedKey)
	to := order.IndexOf(targetKey)
	if from < 0 || to < 0 {
		return order
	}

	out := order.Clone()
	if from < to {
		copy(out[from:to], out[from+1:to+1])
	} else {
		copy(out[to+1:from+1], out[to:from])
	}
	out[to] = draggedKey
	return out
}
