package typeid

// Mutability is a capability flag recorded alongside a type.
type Mutability bool

const (
	NonMutable Mutability = false
	Mutable    Mutability = true
)

// FromBool converts a boolean into a Mutability.
func FromBool(b bool) Mutability {
	return Mutability(b)
}

// Bool returns the flag as a plain boolean.
func (m Mutability) Bool() bool {
	return bool(m)
}

func (m Mutability) String() string {
	if m {
		return "mutable"
	}
	return "non-mutable"
}
