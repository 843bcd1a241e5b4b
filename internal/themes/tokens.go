package themes

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$|^(?:rgb|rgba|hsl|hsla|oklch)\(`)

// Typography captures the type-scale tokens consumed by the rendering layer.
type Typography struct {
	FontFamily string  `json:"fontFamily"`
	BaseSize   string  `json:"baseSize,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
}

// Motion captures animation timing tokens.
type Motion struct {
	Duration string `json:"duration,omitempty"`
	Easing   string `json:"easing,omitempty"`
}

// TokenSet is the validated visual design configuration: colors, spacing,
// typography and motion. The core validates it and hands it to the rendering
// layer read-only; CSS variable generation happens outside this module.
type TokenSet struct {
	Colors     map[string]string `json:"colors"`
	Spacing    map[string]string `json:"spacing,omitempty"`
	Typography Typography        `json:"typography"`
	Motion     Motion            `json:"motion,omitempty"`
}

// Validate checks token-level constraints.
func (t TokenSet) Validate() error {
	errs := validation.Errors{}
	if len(t.Colors) == 0 {
		errs["colors"] = validation.NewError("sitekit.themes.colors_required", "at least one color token is required")
	}
	for name, value := range t.Colors {
		if !colorPattern.MatchString(strings.TrimSpace(value)) {
			errs["colors."+name] = validation.NewError("sitekit.themes.color_invalid", fmt.Sprintf("%q is not a recognized color value", value))
		}
	}
	if strings.TrimSpace(t.Typography.FontFamily) == "" {
		errs["typography.fontFamily"] = validation.NewError("sitekit.themes.font_family_required", "fontFamily is required")
	}
	if t.Typography.Scale != 0 && (t.Typography.Scale < 1 || t.Typography.Scale > 2) {
		errs["typography.scale"] = validation.NewError("sitekit.themes.scale_range", "scale must be between 1 and 2")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
