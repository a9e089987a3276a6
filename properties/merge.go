package properties

// Ptr returns a pointer to v. It is a convenience for building property
// literals, where every field is a pointer:
//
//	p := &properties.ParagraphProperties{
//	    Alignment: properties.Ptr("center"),
//	}
func Ptr[T any](v T) *T {
	return &v
}

// mergeScalar is the merge primitive for leaf fields: a set override wins,
// otherwise the base value is kept. The winner is copied so the result
// never aliases either input.
func mergeScalar[T any](base, override *T) *T {
	if override != nil {
		v := *override
		return &v
	}
	if base != nil {
		v := *base
		return &v
	}
	return nil
}

// mergeSlice replaces the base slice wholesale when the override slice is
// set. Slices are never merged element by element: a style that redefines
// tab stops redefines all of them.
func mergeSlice[T any](base, override []T) []T {
	src := base
	if override != nil {
		src = override
	}
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	copy(out, src)
	return out
}
