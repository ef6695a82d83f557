package style

// Engine translates plain properties into concrete output. Implementations
// must be pure: the same props and theme always give the same result.
type Engine[T any] interface {
	// GenerateStyles translates plain properties into declarations.
	GenerateStyles(props Props, theme T) (Declarations, error)
	// GenerateClasses translates plain properties into class names.
	GenerateClasses(props Props) []string
	// ResolveClassConflicts reduces a priority-ordered class list, lowest
	// priority first. Later entries win over earlier conflicting ones.
	ResolveClassConflicts(classes []string) []string
	// IsBaseElement reports whether id names a raw element the engine renders.
	IsBaseElement(id string) bool
}

// Theme is the part of a theme the resolution pipeline itself reads.
type Theme interface {
	Thresholds() Thresholds
}
