package domain

import (
	"fmt"
	"strings"
)

// Intensity describes how strongly flavored a dish is
type Intensity string

const (
	IntensityLight  Intensity = "light"
	IntensityMedium Intensity = "medium"
	IntensityBold   Intensity = "bold"
)

// Food categories referenced by the scoring rules. Category itself is free-form.
const (
	CategoryRedMeat   = "red meat"
	CategoryFish      = "fish"
	CategoryDessert   = "dessert"
	CategoryAppetizer = "appetizer"
)

// Flavor tags referenced by the scoring rules
const (
	FlavorAcidic = "acidic"
	FlavorFatty  = "fatty"
)

// FoodProfile holds the sensory attributes of a catalog food.
// Name is the catalog key, stored lower-cased.
type FoodProfile struct {
	Name        string    `json:"name" yaml:"name"`
	Category    string    `json:"category" yaml:"category"`
	Intensity   Intensity `json:"intensity" yaml:"intensity"`
	Preparation string    `json:"preparation" yaml:"preparation"`
	Flavors     []string  `json:"flavors" yaml:"flavors"`
}

// HasFlavor reports whether the food is tagged with the given flavor
func (f FoodProfile) HasFlavor(flavor string) bool {
	for _, tag := range f.Flavors {
		if tag == flavor {
			return true
		}
	}
	return false
}

// ParseIntensity converts a string into an Intensity
func ParseIntensity(s string) (Intensity, error) {
	switch i := Intensity(strings.ToLower(strings.TrimSpace(s))); i {
	case IntensityLight, IntensityMedium, IntensityBold:
		return i, nil
	}
	return "", fmt.Errorf("%w: unknown intensity %q", ErrCatalogInvalid, s)
}

// UnmarshalText implements encoding.TextUnmarshaler
func (i *Intensity) UnmarshalText(text []byte) error {
	v, err := ParseIntensity(string(text))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
