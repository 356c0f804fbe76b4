package style

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrUnsupportedEffect = errors.New("unsupported effect")
	ErrUnsupportedColor  = errors.New("unsupported color")
	ErrEffectWithColor   = errors.New("effect and explicit color are incompatible")
	ErrEffectWithCode    = errors.New("effect and code are incompatible")
)

// ConfigError reports an invalid style directive. Err is one of the
// sentinel errors above.
type ConfigError struct {
	Field string
	Value string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Value == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s=%q", e.Err, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Directive is a per-slide style request taken from a raw markup comment
// such as <!-- effect=stars --> or <!-- fg=red bg=black -->. Empty fields
// are unset.
type Directive struct {
	Effect     string
	Foreground string
	Background string
}

// Empty reports whether the directive sets nothing.
func (d Directive) Empty() bool {
	return d.Effect == "" && d.Foreground == "" && d.Background == ""
}

// Merge returns d with the fields set in later applied on top.
func (d Directive) Merge(later Directive) Directive {
	if later.Effect != "" {
		d.Effect = later.Effect
	}
	if later.Foreground != "" {
		d.Foreground = later.Foreground
	}
	if later.Background != "" {
		d.Background = later.Background
	}
	return d
}

var directivePattern = regexp.MustCompile(`(\w+)=(\w+)`)

// ParseDirective extracts key=value pairs from raw markup. Keys other than
// effect, fg and bg are returned in ignored.
func ParseDirective(raw string) (d Directive, ignored []string) {
	for _, m := range directivePattern.FindAllStringSubmatch(raw, -1) {
		switch m[1] {
		case "effect":
			d.Effect = m[2]
		case "fg":
			d.Foreground = m[2]
		case "bg":
			d.Background = m[2]
		default:
			ignored = append(ignored, m[1])
		}
	}
	return d, ignored
}

// Resolved is a slide's validated style.
type Resolved struct {
	Effect     string
	Foreground Color
	Background Color
	Custom     bool
}

// Resolve validates d on top of the slide's current style. hasCode reports
// whether the slide contains a code element. Any error is fatal for the
// whole show.
func (p *Palette) Resolve(d Directive, current Resolved, hasCode bool) (Resolved, error) {
	r := current
	if d.Effect != "" {
		if !p.HasEffect(d.Effect) {
			return current, &ConfigError{Field: "effect", Value: d.Effect, Err: ErrUnsupportedEffect}
		}
		r.Effect = d.Effect
		r.Foreground, r.Background = ColorWhite, ColorBlack
	}

	for _, c := range []struct {
		field, name string
		dst         *Color
	}{
		{"fg", d.Foreground, &r.Foreground},
		{"bg", d.Background, &r.Background},
	} {
		if c.name == "" {
			continue
		}
		color, ok := p.Color(c.name)
		if !ok {
			return current, &ConfigError{Field: c.field, Value: c.name, Err: ErrUnsupportedColor}
		}
		*c.dst = color
	}

	if r.Effect != "" && (d.Foreground != "" || d.Background != "") {
		return current, &ConfigError{Field: "effect", Value: r.Effect, Err: ErrEffectWithColor}
	}
	if r.Effect != "" && hasCode {
		return current, &ConfigError{Field: "effect", Value: r.Effect, Err: ErrEffectWithCode}
	}
	r.Custom = true
	return r, nil
}
