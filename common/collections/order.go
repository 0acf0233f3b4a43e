package collections

// Order is implemented by collection members that know their display position.
type Order interface {
	// Ordinal is a zero-based ordinal that represents the order of an object
	// in a collection.
	Ordinal() int
}

// InOrder reports whether every element of s sits at the position its
// ordinal claims, i.e. the collection was never reordered.
func InOrder[T Order](s []T) bool {
	for i, v := range s {
		if v.Ordinal() != i {
			return false
		}
	}
	return true
}
