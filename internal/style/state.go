package style

// State is the interaction state of one rendered instance.
type State struct {
	Hovered bool
	Focused bool
}

// Listeners reports which interaction observations a component needs.
type Listeners struct {
	Hover bool
	Focus bool
}

// Any reports whether any listener is required.
func (l Listeners) Any() bool {
	return l.Hover || l.Focus
}

// Instance is one rendered occurrence of a definition. It owns its props and
// interaction state; instances never share state.
type Instance struct {
	def   *Definition
	props Props
	state State
}

// NewInstance creates an instance of def with the given literal props.
func NewInstance(def *Definition, props Props) *Instance {
	return &Instance{def: def, props: Overlay(props)}
}

// Definition returns the definition the instance renders.
func (i *Instance) Definition() *Definition { return i.def }

// Props returns the instance's literal props.
func (i *Instance) Props() Props { return i.props }

// State returns the current interaction state.
func (i *Instance) State() State { return i.state }

// SetProps replaces the literal props.
func (i *Instance) SetProps(props Props) {
	i.props = Overlay(props)
}

// PointerEnter marks the instance hovered.
func (i *Instance) PointerEnter() { i.state.Hovered = true }

// PointerLeave clears the hovered flag.
func (i *Instance) PointerLeave() { i.state.Hovered = false }

// Focus marks the instance focused.
func (i *Instance) Focus() { i.state.Focused = true }

// Blur clears the focused flag.
func (i *Instance) Blur() { i.state.Focused = false }

// Reset clears all interaction state, as on remount.
func (i *Instance) Reset() { i.state = State{} }
