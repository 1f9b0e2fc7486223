package scene

import (
	"fmt"
	"strings"
)

// Variant selects one of the two demo configurations.
type Variant int

const (
	// VariantColored draws the flat, vertex colored quad through the translation camera.
	VariantColored Variant = iota

	// VariantTextured draws the rotating, lit and textured quad.
	VariantTextured
)

func ParseVariant(value string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "colored", "color":
		return VariantColored, nil
	case "textured", "texture", "":
		return VariantTextured, nil
	default:
		return 0, fmt.Errorf("unknown variant %q", value)
	}
}

func (v Variant) String() string {
	switch v {
	case VariantColored:
		return "colored"
	case VariantTextured:
		return "textured"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

func (v Variant) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}

	*v = parsed
	return nil
}

// Features returns the pipeline features the variant uses.
func (v Variant) Features() Features {
	if v == VariantColored {
		return FeaturesColored
	}

	return FeaturesTextured
}

// Camera returns the camera the variant uses.
func (v Variant) Camera() Camera {
	if v == VariantColored {
		return TranslationCamera{}
	}

	return DefaultPerspectiveCamera()
}
