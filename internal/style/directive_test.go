package style

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	d, ignored := ParseDirective("<!-- effect=stars fg=red bg=blue size=big -->")
	assert.Equal(t, Directive{Effect: "stars", Foreground: "red", Background: "blue"}, d)
	assert.Equal(t, []string{"size"}, ignored)

	d, ignored = ParseDirective("<!-- just a comment -->")
	assert.True(t, d.Empty())
	assert.Empty(t, ignored)
}

func TestResolve(t *testing.T) {
	p := DefaultPalette()
	base := Resolved{Foreground: ColorBlack, Background: ColorWhite}

	tests := []struct {
		name    string
		d       Directive
		hasCode bool
		want    Resolved
		wantErr error
	}{
		{
			name: "effect forces white on black",
			d:    Directive{Effect: "stars"},
			want: Resolved{Effect: "stars", Foreground: ColorWhite, Background: ColorBlack, Custom: true},
		},
		{
			name: "colors only",
			d:    Directive{Foreground: "red", Background: "cyan"},
			want: Resolved{Foreground: ColorRed, Background: ColorCyan, Custom: true},
		},
		{
			name:    "unknown effect",
			d:       Directive{Effect: "sparkles"},
			wantErr: ErrUnsupportedEffect,
		},
		{
			name:    "unknown color",
			d:       Directive{Foreground: "mauve"},
			wantErr: ErrUnsupportedColor,
		},
		{
			name:    "effect with explicit color",
			d:       Directive{Effect: "stars", Foreground: "red"},
			wantErr: ErrEffectWithColor,
		},
		{
			name:    "effect with background only",
			d:       Directive{Effect: "matrix", Background: "black"},
			wantErr: ErrEffectWithColor,
		},
		{
			name:    "effect with code",
			d:       Directive{Effect: "plasma"},
			hasCode: true,
			wantErr: ErrEffectWithCode,
		},
		{
			name:    "colors with code are fine",
			d:       Directive{Foreground: "green"},
			hasCode: true,
			want:    Resolved{Foreground: ColorGreen, Background: ColorWhite, Custom: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := p.Resolve(tt.d, base, tt.hasCode)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
				var cfgErr *ConfigError
				require.True(t, errors.As(err, &cfgErr))
				assert.Equal(t, base, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveLaterColorAfterEffect(t *testing.T) {
	p := DefaultPalette()
	r, err := p.Resolve(Directive{Effect: "fireworks"}, Resolved{}, false)
	require.NoError(t, err)

	_, err = p.Resolve(Directive{Foreground: "red"}, r, false)
	assert.ErrorIs(t, err, ErrEffectWithColor)
}

func TestConfigErrorMessage(t *testing.T) {
	_, err := DefaultPalette().Resolve(Directive{Effect: "sparkles"}, Resolved{}, false)
	assert.EqualError(t, err, `unsupported effect: effect="sparkles"`)
}

func TestPaletteEffects(t *testing.T) {
	assert.Equal(t,
		[]string{"explosions", "fireworks", "matrix", "plasma", "stars"},
		DefaultPalette().Effects())
}

func TestColorString(t *testing.T) {
	assert.Equal(t, "red", ColorRed.String())
	assert.Equal(t, "default", ColorDefault.String())
	assert.Equal(t, "underline", AttrUnderline.String())
}

func TestDirectiveMerge(t *testing.T) {
	d := Directive{Foreground: "red", Background: "blue"}.
		Merge(Directive{Effect: "stars"}).
		Merge(Directive{Foreground: "green"})
	assert.Equal(t, Directive{Effect: "stars", Foreground: "green", Background: "blue"}, d)
	assert.Equal(t, d, d.Merge(Directive{}))
}
