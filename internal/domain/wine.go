package domain

import (
	"fmt"
	"strings"
)

// WineType is the style family of a wine
type WineType string

const (
	WineRed       WineType = "red"
	WineWhite     WineType = "white"
	WineRose      WineType = "rosé"
	WineSparkling WineType = "sparkling"
	WineDessert   WineType = "dessert"
)

// Body describes the weight of a wine on the palate
type Body string

const (
	BodyLight  Body = "light"
	BodyMedium Body = "medium"
	BodyFull   Body = "full"
)

// Sweetness describes residual sugar in a wine
type Sweetness string

const (
	SweetnessDry       Sweetness = "dry"
	SweetnessOffDry    Sweetness = "off-dry"
	SweetnessSemiSweet Sweetness = "semi-sweet"
	SweetnessSweet     Sweetness = "sweet"
)

// Level is a three-step scale used for acidity and tannins
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// WineProfile holds the sensory attributes of a catalog wine.
// Name is the catalog key and is matched case-sensitively.
type WineProfile struct {
	Name        string    `json:"name" yaml:"name"`
	Type        WineType  `json:"type" yaml:"type"`
	Body        Body      `json:"body" yaml:"body"`
	Sweetness   Sweetness `json:"sweetness" yaml:"sweetness"`
	Acidity     Level     `json:"acidity" yaml:"acidity"`
	Tannins     Level     `json:"tannins" yaml:"tannins"`
	Description string    `json:"description" yaml:"description"`
}

// ParseWineType converts a string into a WineType.
// "rose" is accepted as an alias for "rosé".
func ParseWineType(s string) (WineType, error) {
	switch WineType(strings.ToLower(strings.TrimSpace(s))) {
	case WineRed:
		return WineRed, nil
	case WineWhite:
		return WineWhite, nil
	case WineRose, "rose":
		return WineRose, nil
	case WineSparkling:
		return WineSparkling, nil
	case WineDessert:
		return WineDessert, nil
	}
	return "", fmt.Errorf("%w: unknown wine type %q", ErrCatalogInvalid, s)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *WineType) UnmarshalText(text []byte) error {
	v, err := ParseWineType(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseBody converts a string into a Body
func ParseBody(s string) (Body, error) {
	switch b := Body(strings.ToLower(strings.TrimSpace(s))); b {
	case BodyLight, BodyMedium, BodyFull:
		return b, nil
	}
	return "", fmt.Errorf("%w: unknown body %q", ErrCatalogInvalid, s)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (b *Body) UnmarshalText(text []byte) error {
	v, err := ParseBody(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseSweetness converts a string into a Sweetness
func ParseSweetness(s string) (Sweetness, error) {
	switch v := Sweetness(strings.ToLower(strings.TrimSpace(s))); v {
	case SweetnessDry, SweetnessOffDry, SweetnessSemiSweet, SweetnessSweet:
		return v, nil
	}
	return "", fmt.Errorf("%w: unknown sweetness %q", ErrCatalogInvalid, s)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Sweetness) UnmarshalText(text []byte) error {
	v, err := ParseSweetness(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseLevel converts a string into a Level
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case LevelLow, LevelMedium, LevelHigh:
		return l, nil
	}
	return "", fmt.Errorf("%w: unknown level %q", ErrCatalogInvalid, s)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	v, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = v
	return nil
}
