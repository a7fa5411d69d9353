package collider

// LayerMask controls which colliders are willing to notice each other.
// Layer is the bit(s) this collider belongs to, CollidesWith the bits it
// accepts contact from, and Exclude the bits that always veto a pair
// regardless of the other two fields.
type LayerMask struct {
	Layer        uint32
	CollidesWith uint32
	Exclude      uint32
}

// Consent reports whether a and b are willing to interact. When mutual is
// true both directions of the layer/collides_with test are required;
// otherwise only a's acceptance of b is checked. Exclude always vetoes in
// both directions.
func Consent(a, b LayerMask, mutual bool) bool {
	if a.Layer&b.Exclude != 0 || b.Layer&a.Exclude != 0 {
		return false
	}

	aAcceptsB := b.Layer&a.CollidesWith != 0
	if !mutual {
		return aAcceptsB
	}

	bAcceptsA := a.Layer&b.CollidesWith != 0
	return aAcceptsB && bAcceptsA
}
