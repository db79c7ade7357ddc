package entity

// Kind identifies which record variant is being produced.
type Kind int

const (
	KindCommand Kind = iota
	KindCategory
)

// String returns "command" or "category".
func (k Kind) String() string {
	switch k {
	case KindCommand:
		return "command"
	case KindCategory:
		return "category"
	default:
		return "unknown"
	}
}

// Extension returns the output file extension, without the leading dot.
func (k Kind) Extension() string {
	switch k {
	case KindCommand:
		return "velen"
	case KindCategory:
		return "vecomp"
	default:
		return ""
	}
}

// DefaultPath returns the output directory used when none is configured.
func (k Kind) DefaultPath() string {
	switch k {
	case KindCommand:
		return "commands"
	case KindCategory:
		return "categories"
	default:
		return ""
	}
}
