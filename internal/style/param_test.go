package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamValidate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		param   Param
		wantErr error
	}{
		{
			name: "valid nesting",
			param: Param{
				Props: Props{"color": "red"},
				Hover: &Param{Props: Props{"color": "blue"}},
				Media: Media{{Key: "md", Param: Param{Focus: &Param{Props: Props{"bold": true}}}}},
			},
		},
		{
			name:    "reserved key in props",
			param:   Param{Props: Props{"hover": "x"}},
			wantErr: ErrReservedKey,
		},
		{
			name:    "hover inside hover",
			param:   Param{Hover: &Param{Hover: &Param{}}},
			wantErr: ErrNestedVariant,
		},
		{
			name:    "focus inside hover",
			param:   Param{Hover: &Param{Focus: &Param{}}},
			wantErr: ErrNestedVariant,
		},
		{
			name:    "media inside media",
			param:   Param{Media: Media{{Key: "sm", Param: Param{Media: Media{{Key: "md"}}}}}},
			wantErr: ErrNestedMedia,
		},
		{
			name:    "media inside hover",
			param:   Param{Hover: &Param{Media: Media{{Key: "md"}}}},
			wantErr: ErrNestedMedia,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.param.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestMediaSetKeepsPosition(t *testing.T) {
	t.Parallel()

	m := Media{}.Set("sm", Param{Props: Props{"a": 1}}).Set("lg", Param{})
	updated := m.Set("sm", Param{Props: Props{"a": 2}})

	assert.Equal(t, []string{"sm", "lg"}, updated.Keys())
	got, ok := updated.Get("sm")
	require.True(t, ok)
	assert.Equal(t, 2, got.Props["a"])

	original, _ := m.Get("sm")
	assert.Equal(t, 1, original.Props["a"])

	_, ok = m.Get("xl")
	assert.False(t, ok)
}

func TestParamIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, Param{}.IsZero())
	assert.True(t, Param{Props: Props{}}.IsZero())
	assert.False(t, Param{Hover: &Param{}}.IsZero())
}
