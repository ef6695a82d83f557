package config

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/stylekit/internal/style"
	"github.com/alexisbeaulieu97/stylekit/internal/ui/components"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern        = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	componentNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	colourTokenPattern   = regexp.MustCompile(`^[a-z][a-z0-9-]*(?:\.[a-z0-9-]+)?$`)
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_name", func(fl validator.FieldLevel) bool {
			return componentNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("breakpoint", func(fl validator.FieldLevel) bool {
			return style.Breakpoint(fl.Field().String()).Valid()
		})

		_ = v.RegisterValidation("color_token", func(fl validator.FieldLevel) bool {
			return colourTokenPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("colour", func(fl validator.FieldLevel) bool {
			return isColourLiteral(fl.Field().String())
		})

		v.RegisterStructValidation(themeStructLevel, ThemeConfig{})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// themeStructLevel checks that the thresholds, completed with the base theme
// defaults, strictly increase from sm to 2xl.
func themeStructLevel(sl validator.StructLevel) {
	theme, ok := sl.Current().Interface().(ThemeConfig)
	if !ok {
		return
	}

	thresholds := effectiveThresholds(theme)
	for i := 1; i < len(style.Breakpoints); i++ {
		prev, cur := style.Breakpoints[i-1], style.Breakpoints[i]
		if thresholds.Threshold(cur) <= thresholds.Threshold(prev) {
			sl.ReportError(theme.Breakpoints, "Breakpoints", "Breakpoints", "increasing", string(cur))
			return
		}
	}
}

// effectiveThresholds overlays the configured thresholds on those of the base
// theme. Explicit zeros are kept. Validation and BuildTheme both use it.
func effectiveThresholds(theme ThemeConfig) style.Thresholds {
	thresholds := components.DefaultThresholds()
	if base, ok := components.ThemeByName(theme.Base); ok {
		for name, width := range base.Thresholds() {
			thresholds[name] = width
		}
	}
	for name, width := range theme.Breakpoints {
		thresholds[style.Breakpoint(name)] = width
	}
	return thresholds
}

// isColourLiteral accepts #rgb, #rrggbb and ANSI indexes 0-255.
func isColourLiteral(s string) bool {
	if _, err := components.NormalizeHex(s); err == nil {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}
