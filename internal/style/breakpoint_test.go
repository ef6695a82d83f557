package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testThresholds = Thresholds{
	BreakpointSM:  40,
	BreakpointMD:  60,
	BreakpointLG:  80,
	BreakpointXL:  120,
	Breakpoint2XL: 160,
}

func TestComputeActiveBreakpoints(t *testing.T) {
	t.Parallel()

	cases := []struct {
		width int
		want  []Breakpoint
	}{
		{width: -5, want: []Breakpoint{BreakpointSM}},
		{width: 0, want: []Breakpoint{BreakpointSM}},
		{width: 39, want: []Breakpoint{BreakpointSM}},
		{width: 40, want: []Breakpoint{BreakpointSM, BreakpointMD}},
		{width: 79, want: []Breakpoint{BreakpointSM, BreakpointMD, BreakpointLG}},
		{width: 80, want: []Breakpoint{BreakpointSM, BreakpointMD, BreakpointLG, BreakpointXL}},
		{width: 500, want: Breakpoints[:]},
	}

	for _, tc := range cases {
		active := ComputeActiveBreakpoints(tc.width, testThresholds)
		assert.Equal(t, tc.want, active.Names(), "width %d", tc.width)
	}
}

func TestComputeActiveBreakpointsMissingThresholdIsZero(t *testing.T) {
	t.Parallel()

	active := ComputeActiveBreakpoints(10, Thresholds{BreakpointMD: 60})
	assert.True(t, active.Has(BreakpointSM))
	assert.True(t, active.Has(BreakpointMD), "sm threshold missing, md always active")
	assert.False(t, active.Has(BreakpointLG))
	assert.True(t, active.Has(BreakpointXL), "lg threshold missing, xl always active")

	all := ComputeActiveBreakpoints(0, nil)
	assert.Equal(t, Breakpoints[:], all.Names())
}

func TestComputeActiveBreakpointsIsMonotonic(t *testing.T) {
	t.Parallel()

	prev := ComputeActiveBreakpoints(0, testThresholds)
	for width := 1; width <= 200; width++ {
		next := ComputeActiveBreakpoints(width, testThresholds)
		for i := range Breakpoints {
			if prev[i] {
				require.True(t, next[i], "tier %s deactivated at width %d", Breakpoints[i], width)
			}
			if next[i] && i > 0 {
				require.True(t, next[i-1], "tier %s active without %s", Breakpoints[i], Breakpoints[i-1])
			}
		}
		prev = next
	}
}

func TestActiveBreakpointsUnknownName(t *testing.T) {
	t.Parallel()

	active := ComputeActiveBreakpoints(1000, testThresholds)
	assert.False(t, active.Has("phone"))
	assert.Equal(t, -1, Breakpoint("phone").Index())
	assert.Equal(t, 4, Breakpoint2XL.Index())
}

func TestEvaluateMediaCondition(t *testing.T) {
	t.Parallel()

	// sm, md, lg active; xl and 2xl inactive
	active := ComputeActiveBreakpoints(70, testThresholds)

	cases := map[string]bool{
		"sm":             true,
		"lg":             true,
		"xl":             false,
		"max-xl":         true,
		"max-lg":         false,
		"lg,max-xl":      true,
		"lg, max-xl":     true,
		"md,max-lg":      false,
		"xl,max-2xl":     false,
		"max-phone":      false,
		"phone":          false,
		"lg,":            false,
		"":               false,
		"max-":           false,
		"sm,md,lg":       true,
		"max-xl,max-2xl": true,
	}

	for key, want := range cases {
		assert.Equal(t, want, EvaluateMediaCondition(key, active), "key %q", key)
	}
}

func TestEvaluateMaxIsNegation(t *testing.T) {
	t.Parallel()

	for width := 0; width <= 200; width += 10 {
		active := ComputeActiveBreakpoints(width, testThresholds)
		for _, bp := range Breakpoints {
			assert.Equal(t, !active.Has(bp), EvaluateMediaCondition("max-"+string(bp), active))
		}
	}
}

func TestIsCompoundKey(t *testing.T) {
	t.Parallel()

	assert.False(t, IsCompoundKey("md"))
	assert.True(t, IsCompoundKey("max-md"))
	assert.True(t, IsCompoundKey("sm,md"))
	assert.True(t, IsCompoundKey("max-width-promo"))
}

func TestApplyMediaPreservesTierOrder(t *testing.T) {
	t.Parallel()

	p := Param{
		Props: Props{"color": "base"},
		Media: Media{
			{Key: "lg", Param: Param{Props: Props{"color": "lg"}}},
			{Key: "md", Param: Param{Props: Props{"color": "md"}}},
			{Key: "sm", Param: Param{Props: Props{"color": "sm"}}},
		},
	}

	active := ComputeActiveBreakpoints(100, testThresholds)
	applied := ApplyMedia(p, active)

	assert.Equal(t, "lg", applied.Props["color"])
	assert.Nil(t, applied.Media)
}

func TestApplyMediaCompoundAfterSimple(t *testing.T) {
	t.Parallel()

	p := Param{
		Media: Media{
			{Key: "md,max-xl", Param: Param{Props: Props{"p": "range"}}},
			{Key: "md", Param: Param{Props: Props{"p": "md", "m": 1}}},
			{Key: "max-lg", Param: Param{Props: Props{"m": 9}}},
		},
	}

	mid := ApplyMedia(p, ComputeActiveBreakpoints(70, testThresholds))
	assert.Equal(t, Props{"p": "range", "m": 1}, mid.Props)

	narrow := ApplyMedia(p, ComputeActiveBreakpoints(50, testThresholds))
	assert.Equal(t, Props{"p": "range", "m": 9}, narrow.Props)

	tiny := ApplyMedia(p, ComputeActiveBreakpoints(10, testThresholds))
	assert.Equal(t, Props{"m": 9}, tiny.Props)

	wide := ApplyMedia(p, ComputeActiveBreakpoints(150, testThresholds))
	assert.Equal(t, Props{"p": "md", "m": 1}, wide.Props)
}

func TestApplyMediaKeepsVariantsInsideMedia(t *testing.T) {
	t.Parallel()

	p := Param{
		Hover: &Param{Props: Props{"color": "blue"}},
		Media: Media{
			{Key: "md", Param: Param{Hover: &Param{Props: Props{"bold": true}}}},
		},
	}

	applied := ApplyMedia(p, ComputeActiveBreakpoints(100, testThresholds))
	require.NotNil(t, applied.Hover)
	assert.Equal(t, Props{"color": "blue", "bold": true}, applied.Hover.Props)
}

func TestApplyMediaIgnoresInertKeys(t *testing.T) {
	t.Parallel()

	p := Param{
		Props: Props{"color": "red"},
		Media: Media{
			{Key: "phone", Param: Param{Props: Props{"color": "blue"}}},
			{Key: "max-width-promo", Param: Param{Props: Props{"color": "green"}}},
		},
	}

	applied := ApplyMedia(p, ComputeActiveBreakpoints(100, testThresholds))
	assert.Equal(t, Props{"color": "red"}, applied.Props)
	assert.Equal(t, []string{"phone", "max-width-promo"}, InertMediaKeys(p))
}

func TestApplyMediaWithoutMediaIsIdentity(t *testing.T) {
	t.Parallel()

	p := Param{Props: Props{"color": "red"}}
	assert.Equal(t, p, ApplyMedia(p, ComputeActiveBreakpoints(0, testThresholds)))
}
