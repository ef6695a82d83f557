package style

import "strings"

// Breakpoint names a responsive tier.
type Breakpoint string

const (
	BreakpointSM  Breakpoint = "sm"
	BreakpointMD  Breakpoint = "md"
	BreakpointLG  Breakpoint = "lg"
	BreakpointXL  Breakpoint = "xl"
	Breakpoint2XL Breakpoint = "2xl"
)

const breakpointCount = 5

// maxPrefix marks a negated media condition part.
const maxPrefix = "max-"

// Breakpoints lists the tiers in ascending order.
var Breakpoints = [breakpointCount]Breakpoint{
	BreakpointSM,
	BreakpointMD,
	BreakpointLG,
	BreakpointXL,
	Breakpoint2XL,
}

// Index returns the position of b in Breakpoints, or -1 for unknown names.
func (b Breakpoint) Index() int {
	for i, name := range Breakpoints {
		if name == b {
			return i
		}
	}
	return -1
}

// Valid reports whether b is one of the known tiers.
func (b Breakpoint) Valid() bool {
	return b.Index() >= 0
}

// Thresholds maps each tier to its minimum width in terminal columns.
//
// A missing threshold reads as 0, so the tier it gates is always active. A
// partially configured theme degrades to "more tiers active" instead of failing.
type Thresholds map[Breakpoint]int

// Threshold returns the configured width for b, or 0 when unset.
func (t Thresholds) Threshold(b Breakpoint) int {
	return t[b]
}

// ActiveBreakpoints records which tiers are active for the current width.
type ActiveBreakpoints [breakpointCount]bool

// Has reports whether b is active. Unknown names are never active.
func (a ActiveBreakpoints) Has(b Breakpoint) bool {
	i := b.Index()
	if i < 0 {
		return false
	}
	return a[i]
}

// Names returns the active tiers in ascending order.
func (a ActiveBreakpoints) Names() []Breakpoint {
	names := make([]Breakpoint, 0, breakpointCount)
	for i, active := range a {
		if active {
			names = append(names, Breakpoints[i])
		}
	}
	return names
}

// ComputeActiveBreakpoints evaluates the cascading minimum-width model: the
// first tier is always active and tier i is active once width reaches the
// threshold of tier i-1. Negative widths are treated as 0.
func ComputeActiveBreakpoints(width int, thresholds Thresholds) ActiveBreakpoints {
	if width < 0 {
		width = 0
	}

	var active ActiveBreakpoints
	for i := range Breakpoints {
		if i == 0 {
			active[i] = true
			continue
		}
		active[i] = width >= thresholds.Threshold(Breakpoints[i-1])
	}
	return active
}

// IsCompoundKey reports whether a media key is evaluated as a condition
// rather than matched as a tier name. A key is compound when it contains a
// comma or the substring "max".
func IsCompoundKey(key string) bool {
	return strings.Contains(key, ",") || strings.Contains(key, "max")
}

// EvaluateMediaCondition evaluates a media key against the active tiers.
// Parts are comma separated and all must hold. A part "max-<name>" holds when
// the tier is inactive; a bare "<name>" holds when it is active. A part naming
// an unknown tier makes the whole condition false.
func EvaluateMediaCondition(key string, active ActiveBreakpoints) bool {
	parts := strings.Split(key, ",")
	for _, part := range parts {
		part = strings.TrimSpace(part)

		negate := false
		if strings.HasPrefix(part, maxPrefix) {
			negate = true
			part = strings.TrimPrefix(part, maxPrefix)
		}

		bp := Breakpoint(part)
		if !bp.Valid() {
			return false
		}
		if active.Has(bp) == negate {
			return false
		}
	}
	return true
}

// ApplyMedia folds the media entries of p that apply to the active tiers into
// the base parameter. Simple keys apply in ascending tier order whatever their
// declaration order; compound keys apply afterwards in declaration order.
// The result carries no media map.
func ApplyMedia(p Param, active ActiveBreakpoints) Param {
	if len(p.Media) == 0 {
		return p
	}

	params := []Param{p.WithoutMedia()}

	for _, bp := range Breakpoints {
		key := string(bp)
		if IsCompoundKey(key) || !active.Has(bp) {
			continue
		}
		if sub, ok := p.Media.Get(key); ok {
			params = append(params, sub.WithoutMedia())
		}
	}

	for _, rule := range p.Media {
		if !IsCompoundKey(rule.Key) {
			continue
		}
		if EvaluateMediaCondition(rule.Key, active) {
			params = append(params, rule.Param.WithoutMedia())
		}
	}

	return Merge(params...)
}

// InertMediaKeys returns the keys of p.Media that can never match: simple keys
// that are not a known tier and compound keys naming an unknown tier.
func InertMediaKeys(p Param) []string {
	var inert []string
	for _, rule := range p.Media {
		if !mediaKeyWellFormed(rule.Key) {
			inert = append(inert, rule.Key)
		}
	}
	return inert
}

func mediaKeyWellFormed(key string) bool {
	if !IsCompoundKey(key) {
		return Breakpoint(key).Valid()
	}
	for _, part := range strings.Split(key, ",") {
		part = strings.TrimPrefix(strings.TrimSpace(part), maxPrefix)
		if !Breakpoint(part).Valid() {
			return false
		}
	}
	return true
}
