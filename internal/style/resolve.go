package style

import (
	"strings"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// Source names, in ascending priority.
const (
	SourceInherited = "inherited"
	SourceStatic    = "static"
	SourceComputed  = "computed"
	SourceInstance  = "instance"
)

// PropFilter is implemented by engines that can tell style properties apart
// from other instance props. Non-style props are passed through untouched.
type PropFilter interface {
	IsStyleProp(name string) bool
}

// SourceResult is the state-selected output of one style source.
type SourceResult struct {
	Name   string
	Props  Props
	Styles Declarations
}

// Resolved is the flattened output of one resolution pass.
type Resolved struct {
	// Styles is the final declaration set, highest priority source last.
	Styles Declarations
	// Props is the overlay of every source's selected plain properties.
	Props Props
	// Attributes holds instance props the engine does not style.
	Attributes Props
	ClassNames []string
	ClassName  string
	Listeners  Listeners
	Active     ActiveBreakpoints
	Sources    []SourceResult
}

// ResolverOption configures a Resolver.
type ResolverOption func(*resolverConfig)

type resolverConfig struct {
	cache *Cache
	log   *logger.Logger
	width int
}

// WithCache memoizes media activation and parsing.
func WithCache(c *Cache) ResolverOption {
	return func(cfg *resolverConfig) {
		cfg.cache = c
	}
}

// WithLogger attaches a logger for debug tracing.
func WithLogger(l *logger.Logger) ResolverOption {
	return func(cfg *resolverConfig) {
		cfg.log = l
	}
}

// WithWidth sets the initial viewport width.
func WithWidth(width int) ResolverOption {
	return func(cfg *resolverConfig) {
		cfg.width = width
	}
}

// Resolver runs the per-render resolution pipeline for one theme and engine.
// It holds the current viewport width; interaction state is supplied per call.
type Resolver[T Theme] struct {
	engine Engine[T]
	theme  T
	cache  *Cache
	log    *logger.Logger
	width  int
	active ActiveBreakpoints
}

// NewResolver creates a resolver for theme using engine.
func NewResolver[T Theme](engine Engine[T], theme T, opts ...ResolverOption) *Resolver[T] {
	cfg := resolverConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Resolver[T]{
		engine: engine,
		theme:  theme,
		cache:  cfg.cache,
		log:    cfg.log,
	}
	r.SetWidth(cfg.width)
	return r
}

// SetWidth records a new viewport width and recomputes the active tiers.
func (r *Resolver[T]) SetWidth(width int) ActiveBreakpoints {
	r.width = width
	r.active = ComputeActiveBreakpoints(width, r.theme.Thresholds())
	return r.active
}

// Width returns the current viewport width.
func (r *Resolver[T]) Width() int { return r.width }

// Active returns the tiers active at the current width.
func (r *Resolver[T]) Active() ActiveBreakpoints { return r.active }

// Theme returns the resolver's theme.
func (r *Resolver[T]) Theme() T { return r.theme }

// ResolveInstance resolves an instance with its own props and state.
func (r *Resolver[T]) ResolveInstance(inst *Instance) (Resolved, error) {
	return r.Resolve(inst.Definition(), inst.Props(), inst.State())
}

// Resolve combines the inherited, static, computed and instance sources of
// def into one declaration set and class list.
func (r *Resolver[T]) Resolve(def *Definition, props Props, state State) (Resolved, error) {
	if def == nil {
		return Resolved{}, ErrNilDefinition
	}

	styleProps, attributes := r.splitInstanceProps(props)

	inheritedParam := Merge(append([]Param{def.inheritedStyles}, compute(def.inheritedComputeFns, props)...)...)
	computedParam := Merge(compute(def.computeFns, props)...)

	inherited := r.selectSource(SourceInherited, inheritedParam, state)
	static := r.selectSource(SourceStatic, def.styles, state)
	computed := r.selectSource(SourceComputed, computedParam, state)

	listeners := Listeners{
		Hover: inherited.parsed.HoverSpecified || static.parsed.HoverSpecified || computed.parsed.HoverSpecified,
		Focus: inherited.parsed.FocusSpecified || static.parsed.FocusSpecified || computed.parsed.FocusSpecified,
	}

	definitionProps := Overlay(static.props, computed.props)
	definitionStyles := Overlay(static.styles, computed.styles)

	inheritedGenerated, err := r.engine.GenerateStyles(orEmpty(inherited.props), r.theme)
	if err != nil {
		return Resolved{}, stylekiterrors.NewResolveError(def.Name(), SourceInherited, err)
	}
	definitionGenerated, err := r.engine.GenerateStyles(orEmpty(definitionProps), r.theme)
	if err != nil {
		return Resolved{}, stylekiterrors.NewResolveError(def.Name(), r.definitionSource(computed.props), err)
	}
	instanceGenerated, err := r.engine.GenerateStyles(styleProps, r.theme)
	if err != nil {
		return Resolved{}, stylekiterrors.NewResolveError(def.Name(), SourceInstance, err)
	}

	classes := make([]string, 0, 8)
	classes = append(classes, r.engine.GenerateClasses(orEmpty(inherited.props))...)
	classes = append(classes, r.engine.GenerateClasses(orEmpty(definitionProps))...)
	classes = append(classes, r.engine.GenerateClasses(styleProps)...)
	classes = r.engine.ResolveClassConflicts(classes)

	resolved := Resolved{
		Styles: orEmpty(Overlay(
			inheritedGenerated,
			inherited.styles,
			definitionGenerated,
			definitionStyles,
			instanceGenerated,
		)),
		Props:      orEmpty(Overlay(inherited.props, definitionProps, styleProps)),
		Attributes: attributes,
		ClassNames: classes,
		ClassName:  strings.Join(classes, " "),
		Listeners:  listeners,
		Active:     r.active,
		Sources: []SourceResult{
			inherited.result(),
			static.result(),
			computed.result(),
			{Name: SourceInstance, Props: styleProps, Styles: Declarations{}},
		},
	}

	if r.log.DebugEnabled() {
		for _, src := range []struct {
			name  string
			param Param
		}{
			{SourceInherited, inheritedParam},
			{SourceStatic, def.styles},
			{SourceComputed, computedParam},
		} {
			if inert := InertMediaKeys(src.param); len(inert) > 0 {
				r.log.WithFields(map[string]any{
					"component": def.Name(),
					"source":    src.name,
					"keys":      inert,
				}).Debug("ignoring malformed media keys")
			}
		}
	}

	r.log.WithFields(map[string]any{
		"component": def.Name(),
		"width":     r.width,
		"hovered":   state.Hovered,
		"focused":   state.Focused,
	}).Debug("resolved component styles")

	return resolved, nil
}

type selectedSource struct {
	name   string
	parsed Parsed
	props  Props
	styles Declarations
}

func (s selectedSource) result() SourceResult {
	return SourceResult{Name: s.name, Props: s.props, Styles: s.styles}
}

func (r *Resolver[T]) selectSource(name string, p Param, state State) selectedSource {
	parsed := r.cache.Prepare(p, r.active)
	props, styles := parsed.Select(state)
	return selectedSource{name: name, parsed: parsed, props: props, styles: styles}
}

// definitionSource names the source a failed definition translation came
// from. Static and computed props are translated as one overlay, so the
// computed props are retried alone.
func (r *Resolver[T]) definitionSource(computed Props) string {
	if len(computed) > 0 {
		if _, err := r.engine.GenerateStyles(computed, r.theme); err != nil {
			return SourceComputed
		}
	}
	return SourceStatic
}

func (r *Resolver[T]) splitInstanceProps(props Props) (Props, Props) {
	styleProps := Props{}
	attributes := Props{}

	filter, _ := any(r.engine).(PropFilter)
	for key, value := range props {
		switch {
		case isReservedKey(key):
			continue
		case filter != nil && !filter.IsStyleProp(key):
			attributes[key] = value
		default:
			styleProps[key] = value
		}
	}
	return styleProps, attributes
}

func compute(fns []ComputeFunc, props Props) []Param {
	params := make([]Param, 0, len(fns))
	for _, fn := range fns {
		params = append(params, fn(Overlay(props)))
	}
	return params
}
