package style

import "errors"

// ErrNilDefinition is returned when a nil definition is used as a base.
var ErrNilDefinition = errors.New("nil styled component definition")

// ComputeFunc derives a style parameter from the props of a rendered instance.
type ComputeFunc func(props Props) Param

// Base is what a styled component is defined on: either a raw Element or a
// previously defined *Definition.
type Base interface {
	base()
}

// Element identifies a raw base element understood by the engine.
type Element string

func (Element) base() {}

// Definition is an immutable styled component definition. Parent style data
// is copied at definition time, so resolution never walks the chain.
type Definition struct {
	name    string
	element Element
	parent  *Definition

	styles              Param
	inheritedStyles     Param
	computeFns          []ComputeFunc
	inheritedComputeFns []ComputeFunc
}

func (*Definition) base() {}

// Option configures a Definition at creation time.
type Option func(*Definition)

// WithName labels the definition for logs and errors.
func WithName(name string) Option {
	return func(d *Definition) {
		d.name = name
	}
}

// WithStyles sets the static style parameter. Repeated options merge in order.
func WithStyles(p Param) Option {
	return func(d *Definition) {
		d.styles = Merge(d.styles, p)
	}
}

// WithCompute appends a props-driven style function.
func WithCompute(fn ComputeFunc) Option {
	return func(d *Definition) {
		if fn != nil {
			d.computeFns = append(d.computeFns, fn)
		}
	}
}

// Define creates a styled component definition on base. When base is a
// *Definition the new definition inherits its element, its accumulated
// static styles and its compute functions.
func Define(base Base, opts ...Option) (*Definition, error) {
	d := &Definition{}

	switch b := base.(type) {
	case Element:
		d.element = b
	case *Definition:
		if b == nil {
			return nil, ErrNilDefinition
		}
		d.element = b.element
		d.parent = b
		d.inheritedStyles = Merge(b.inheritedStyles, b.styles)
		d.inheritedComputeFns = append(append([]ComputeFunc(nil), b.inheritedComputeFns...), b.computeFns...)
	default:
		return nil, ErrNilDefinition
	}

	for _, opt := range opts {
		opt(d)
	}
	if d.name == "" {
		d.name = string(d.element)
	}

	if err := d.styles.Validate(); err != nil {
		return nil, err
	}

	return d, nil
}

// DefineFunc creates a definition whose only style source is fn, evaluated
// against the props of every rendered instance.
func DefineFunc(base Base, fn ComputeFunc, opts ...Option) (*Definition, error) {
	return Define(base, append([]Option{WithCompute(fn)}, opts...)...)
}

// MustDefine is like Define but panics on error. It is meant for package-level
// definitions built from literals.
func MustDefine(base Base, opts ...Option) *Definition {
	d, err := Define(base, opts...)
	if err != nil {
		panic(err)
	}
	return d
}

// Extend defines a child of d.
func (d *Definition) Extend(opts ...Option) (*Definition, error) {
	return Define(d, opts...)
}

// Name returns the definition label.
func (d *Definition) Name() string { return d.name }

// Element returns the raw element at the root of the inheritance chain.
func (d *Definition) Element() Element { return d.element }

// Parent returns the definition this one extends, or nil.
func (d *Definition) Parent() *Definition { return d.parent }

// Styles returns the definition's own static parameter.
func (d *Definition) Styles() Param { return d.styles }

// InheritedStyles returns the static parameter accumulated from ancestors.
func (d *Definition) InheritedStyles() Param { return d.inheritedStyles }

// ComputeFns returns all compute functions, ancestors first.
func (d *Definition) ComputeFns() []ComputeFunc {
	return append(append([]ComputeFunc(nil), d.inheritedComputeFns...), d.computeFns...)
}

// OwnComputeFns returns the compute functions declared on d itself.
func (d *Definition) OwnComputeFns() []ComputeFunc {
	return append([]ComputeFunc(nil), d.computeFns...)
}

// InheritedComputeFns returns the compute functions inherited from ancestors.
func (d *Definition) InheritedComputeFns() []ComputeFunc {
	return append([]ComputeFunc(nil), d.inheritedComputeFns...)
}
