package style

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	stylekiterrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

func TestResolvePlainParamAtFullWidth(t *testing.T) {
	t.Parallel()

	def := MustDefine(Element("div"), WithStyles(Param{Props: Props{"color": "red"}}))
	r := newTestResolver(1000)
	require.Equal(t, Breakpoints[:], r.Active().Names())

	resolved, err := r.Resolve(def, nil, State{})
	require.NoError(t, err)

	assert.Equal(t, Props{"color": "red"}, resolved.Props)
	assert.Equal(t, Declarations{"color": "red"}, resolved.Styles)
	assert.False(t, resolved.Listeners.Any())
}

func TestResolveFocusOverridesBase(t *testing.T) {
	t.Parallel()

	def := MustDefine(Element("div"), WithStyles(Param{
		Props: Props{"color": "red"},
		Focus: &Param{Props: Props{"color": "blue"}},
	}))

	resolved, err := newTestResolver(100).Resolve(def, nil, State{Focused: true})
	require.NoError(t, err)

	assert.Equal(t, Props{"color": "blue"}, resolved.Props)
	assert.Equal(t, Listeners{Focus: true}, resolved.Listeners)
}

func TestResolveHoverBeatsFocus(t *testing.T) {
	t.Parallel()

	def := MustDefine(Element("div"), WithStyles(Param{
		Focus: &Param{Props: Props{"color": "red"}},
		Hover: &Param{Props: Props{"color": "blue"}},
	}))

	resolved, err := newTestResolver(100).Resolve(def, nil, State{Focused: true, Hovered: true})
	require.NoError(t, err)

	assert.Equal(t, Props{"color": "blue"}, resolved.Props)
	assert.Equal(t, Listeners{Hover: true, Focus: true}, resolved.Listeners)
}

func TestResolveInheritsDirectStyles(t *testing.T) {
	t.Parallel()

	parent := MustDefine(Element("div"), WithStyles(Param{Styles: Declarations{"color": "red", "padding": 12}}))
	child := MustDefine(parent, WithStyles(Param{Styles: Declarations{"color": "blue"}}))

	resolved, err := newTestResolver(100).Resolve(child, nil, State{})
	require.NoError(t, err)

	assert.Equal(t, Declarations{"color": "blue", "padding": 12}, resolved.Styles)

	// the parent is untouched by the child definition
	parentResolved, err := newTestResolver(100).Resolve(parent, nil, State{})
	require.NoError(t, err)
	assert.Equal(t, Declarations{"color": "red", "padding": 12}, parentResolved.Styles)
}

func TestResolveOnlyActiveMedia(t *testing.T) {
	t.Parallel()

	def := MustDefine(Element("div"), WithStyles(Param{
		Media: Media{
			{Key: "sm", Param: Param{Props: Props{"color": "red"}}},
			{Key: "md", Param: Param{Props: Props{"s": "small"}}},
		},
	}))

	r := newTestResolver(10)
	require.Equal(t, []Breakpoint{BreakpointSM}, r.Active().Names())

	resolved, err := r.Resolve(def, nil, State{})
	require.NoError(t, err)

	assert.Equal(t, "red", resolved.Props["color"])
	assert.NotContains(t, resolved.Props, "s")
	assert.NotContains(t, resolved.Styles, "fontSize")
	assert.Empty(t, resolved.ClassNames)

	r.SetWidth(100)
	resolved, err = r.Resolve(def, nil, State{})
	require.NoError(t, err)
	assert.Equal(t, smallFontSize, resolved.Styles["fontSize"])
	assert.Equal(t, "small", resolved.ClassName)
}

func TestResolveInstancePropsWin(t *testing.T) {
	t.Parallel()

	def := MustDefine(Element("div"), WithStyles(Param{
		Props:  Props{"color": "red"},
		Styles: Declarations{"color": "red"},
		Focus:  &Param{Props: Props{"color": "red"}, Styles: Declarations{"color": "red"}},
		Hover:  &Param{Props: Props{"color": "red"}, Styles: Declarations{"color": "red"}},
	}))

	resolved, err := newTestResolver(100).Resolve(def, Props{"color": "blue", "id": "x"}, State{Focused: true, Hovered: true})
	require.NoError(t, err)

	assert.Equal(t, "blue", resolved.Styles["color"])
	assert.Equal(t, "blue", resolved.Props["color"])
	assert.Equal(t, Props{"id": "x"}, resolved.Attributes)
}

func TestResolveDirectStylePriority(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		param Param
		state State
		want  string
	}{
		{
			name: "direct styles beat style props",
			param: Param{
				Props:  Props{"color": "red"},
				Focus:  &Param{Props: Props{"color": "red"}},
				Hover:  &Param{Props: Props{"color": "red"}},
				Styles: Declarations{"color": "blue"},
			},
			state: State{Focused: true, Hovered: true},
			want:  "blue",
		},
		{
			name: "direct focus styles beat direct styles",
			param: Param{
				Styles: Declarations{"color": "red"},
				Focus:  &Param{Styles: Declarations{"color": "blue"}},
			},
			state: State{Focused: true},
			want:  "blue",
		},
		{
			name: "direct hover styles beat direct focus styles",
			param: Param{
				Focus: &Param{Styles: Declarations{"color": "red"}},
				Hover: &Param{Styles: Declarations{"color": "blue"}},
			},
			state: State{Focused: true, Hovered: true},
			want:  "blue",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			def := MustDefine(Element("div"), WithStyles(tc.param))
			resolved, err := newTestResolver(100).Resolve(def, nil, tc.state)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resolved.Styles["color"])
		})
	}
}

func TestResolveComputedStyles(t *testing.T) {
	t.Parallel()

	def := MustDefine(Element("div"), WithCompute(func(props Props) Param {
		if props["shrink"] == true {
			return Param{Props: Props{"s": "small"}}
		}
		return Param{}
	}))

	resolved, err := newTestResolver(100).Resolve(def, Props{"shrink": true}, State{})
	require.NoError(t, err)

	assert.Equal(t, smallFontSize, resolved.Styles["fontSize"])
	assert.Equal(t, Props{"shrink": true}, resolved.Attributes)

	resolved, err = newTestResolver(100).Resolve(def, Props{"shrink": false}, State{})
	require.NoError(t, err)
	assert.NotContains(t, resolved.Styles, "fontSize")
}

func TestResolveComputedOverridesStatic(t *testing.T) {
	t.Parallel()

	def := MustDefine(Element("div"),
		WithStyles(Param{Props: Props{"color": "red"}, Styles: Declarations{"padding": 1}}),
		WithCompute(func(Props) Param {
			return Param{Props: Props{"color": "blue"}, Styles: Declarations{"padding": 2}}
		}),
	)

	resolved, err := newTestResolver(100).Resolve(def, nil, State{})
	require.NoError(t, err)

	assert.Equal(t, "blue", resolved.Styles["color"])
	assert.Equal(t, 2, resolved.Styles["padding"])
}

func TestResolveCascadesStyleProps(t *testing.T) {
	t.Parallel()

	parent := MustDefine(Element("div"), WithStyles(Param{Props: Props{"color": "red", "s": "small"}}))
	child := MustDefine(parent, WithStyles(Param{Props: Props{"color": "blue"}}))

	resolved, err := newTestResolver(100).Resolve(child, nil, State{})
	require.NoError(t, err)

	assert.Equal(t, Declarations{"color": "blue", "fontSize": smallFontSize}, resolved.Styles)
}

func TestResolveInheritedComputeFunctions(t *testing.T) {
	t.Parallel()

	parent := MustDefine(Element("div"), WithCompute(func(props Props) Param {
		if props["big"] == true {
			return Param{Props: Props{"s": "large"}}
		}
		return Param{}
	}))
	child, err := parent.Extend(WithStyles(Param{Props: Props{"color": "green"}}))
	require.NoError(t, err)
	require.Len(t, child.InheritedComputeFns(), 1)
	require.Empty(t, child.OwnComputeFns())

	resolved, err := newTestResolver(100).Resolve(child, Props{"big": true}, State{})
	require.NoError(t, err)

	assert.Equal(t, largeFontSize, resolved.Styles["fontSize"])
	assert.Equal(t, "green", resolved.Styles["color"])
}

func TestResolveListenersFollowInheritance(t *testing.T) {
	t.Parallel()

	plain := MustDefine(Element("div"), WithStyles(Param{Props: Props{"color": "red"}}))
	resolved, err := newTestResolver(100).Resolve(plain, nil, State{})
	require.NoError(t, err)
	assert.Equal(t, Listeners{}, resolved.Listeners)

	hoverParent := MustDefine(Element("div"), WithStyles(Param{Hover: &Param{Props: Props{"color": "blue"}}}))
	child := MustDefine(hoverParent)
	resolved, err = newTestResolver(100).Resolve(child, nil, State{})
	require.NoError(t, err)
	assert.Equal(t, Listeners{Hover: true}, resolved.Listeners)

	mediaFocus := MustDefine(Element("div"), WithStyles(Param{
		Media: Media{{Key: "xl", Param: Param{Focus: &Param{Props: Props{"color": "blue"}}}}},
	}))
	resolved, err = newTestResolver(10).Resolve(mediaFocus, nil, State{})
	require.NoError(t, err)
	assert.False(t, resolved.Listeners.Focus, "inactive media does not request listeners")
}

func TestResolveClassConflictsInstanceLast(t *testing.T) {
	t.Parallel()

	parent := MustDefine(Element("div"), WithStyles(Param{Props: Props{"s": "small"}}))
	child := MustDefine(parent)

	resolved, err := newTestResolver(100).Resolve(child, Props{"s": "large"}, State{})
	require.NoError(t, err)

	assert.Equal(t, []string{"large"}, resolved.ClassNames)
	assert.Equal(t, "large", resolved.ClassName)
	assert.Equal(t, largeFontSize, resolved.Styles["fontSize"])
}

func TestResolveSurfacesEngineErrors(t *testing.T) {
	t.Parallel()

	def := MustDefine(Element("div"), WithName("broken"), WithStyles(Param{Props: Props{"fail": true}}))

	_, err := newTestResolver(100).Resolve(def, nil, State{})
	require.Error(t, err)
	require.True(t, errors.Is(err, errTestEngine))

	var resolveErr *stylekiterrors.ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, "broken", resolveErr.Component)
	assert.Equal(t, SourceStatic, resolveErr.Source)
}

func TestResolveAttributesComputedEngineErrors(t *testing.T) {
	t.Parallel()

	def, err := DefineFunc(Element("div"), func(props Props) Param {
		if props["broken"] == true {
			return Param{Props: Props{"fail": true}}
		}
		return Param{}
	}, WithName("computedBroken"), WithStyles(Param{Props: Props{"color": "red"}}))
	require.NoError(t, err)

	r := newTestResolver(100)
	_, err = r.Resolve(def, Props{"broken": true}, State{})
	require.ErrorIs(t, err, errTestEngine)

	var resolveErr *stylekiterrors.ResolveError
	require.ErrorAs(t, err, &resolveErr)
	assert.Equal(t, "computedBroken", resolveErr.Component)
	assert.Equal(t, SourceComputed, resolveErr.Source)

	_, err = r.Resolve(def, nil, State{})
	require.NoError(t, err)
}

func TestResolveLogsInertMediaKeysFromEverySource(t *testing.T) {
	t.Parallel()

	parent := MustDefine(Element("div"), WithName("parent"), WithStyles(Param{
		Media: Media{{Key: "tablet", Param: Param{Props: Props{"color": "red"}}}},
	}))
	child, err := DefineFunc(parent, func(Props) Param {
		return Param{Media: Media{{Key: "sm, huge", Param: Param{Props: Props{"color": "blue"}}}}}
	}, WithName("child"))
	require.NoError(t, err)

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	_, err = newTestResolver(100, WithLogger(log)).Resolve(child, nil, State{})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"source":"inherited"`)
	assert.Contains(t, out, `"tablet"`)
	assert.Contains(t, out, `"source":"computed"`)
	assert.Contains(t, out, `"sm, huge"`)
}

func TestResolveNilDefinition(t *testing.T) {
	t.Parallel()

	_, err := newTestResolver(100).Resolve(nil, nil, State{})
	require.ErrorIs(t, err, ErrNilDefinition)
}

func TestResolveInstanceState(t *testing.T) {
	t.Parallel()

	def := MustDefine(Element("div"), WithStyles(Param{
		Props: Props{"color": "red"},
		Hover: &Param{Props: Props{"color": "blue"}},
	}))
	first := NewInstance(def, Props{"id": "a"})
	second := NewInstance(def, Props{"id": "b"})
	r := newTestResolver(100)

	first.PointerEnter()

	got, err := r.ResolveInstance(first)
	require.NoError(t, err)
	assert.Equal(t, "blue", got.Styles["color"])

	got, err = r.ResolveInstance(second)
	require.NoError(t, err)
	assert.Equal(t, "red", got.Styles["color"], "instances do not share state")

	first.PointerLeave()
	first.Focus()
	assert.Equal(t, State{Focused: true}, first.State())
	first.Reset()
	assert.Equal(t, State{}, first.State())
}

func TestResolveWithCacheMatchesUncached(t *testing.T) {
	t.Parallel()

	def := MustDefine(Element("div"), WithStyles(Param{
		Props: Props{"color": "red"},
		Media: Media{{Key: "md", Param: Param{Props: Props{"s": "small"}}}},
	}))

	cache := NewCache(16)
	cached := newTestResolver(100, WithCache(cache))
	plain := newTestResolver(100)

	for i := 0; i < 3; i++ {
		want, err := plain.Resolve(def, nil, State{})
		require.NoError(t, err)
		got, err := cached.Resolve(def, nil, State{})
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	hits, misses := cache.Stats()
	assert.Positive(t, hits)
	assert.Positive(t, misses)
}
