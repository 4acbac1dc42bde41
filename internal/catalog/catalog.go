// Package catalog holds the immutable wine and food reference tables the
// pairing engine scores against.
package catalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/winepair/backend/internal/domain"
)

// Catalog is an immutable, ordered set of wine and food profiles plus the
// keyword fallback table. It is safe for concurrent use.
type Catalog struct {
	wines     []domain.WineProfile
	foods     []domain.FoodProfile
	keywords  []domain.KeywordPairing
	wineIndex map[string]int
	foodIndex map[string]int
}

// New validates data and builds a Catalog from it.
// Iteration order of wines, foods and keywords follows the input order.
func New(data domain.CatalogData) (*Catalog, error) {
	c := &Catalog{
		wines:     make([]domain.WineProfile, 0, len(data.Wines)),
		foods:     make([]domain.FoodProfile, 0, len(data.Foods)),
		keywords:  make([]domain.KeywordPairing, 0, len(data.Keywords)),
		wineIndex: make(map[string]int, len(data.Wines)),
		foodIndex: make(map[string]int, len(data.Foods)),
	}

	for _, raw := range data.Wines {
		wine, err := normalizeWine(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := c.wineIndex[wine.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate wine %q", domain.ErrCatalogInvalid, wine.Name)
		}
		c.wineIndex[wine.Name] = len(c.wines)
		c.wines = append(c.wines, wine)
	}

	for _, food := range data.Foods {
		food.Name = NormalizeFoodName(food.Name)
		if food.Name == "" {
			return nil, fmt.Errorf("%w: food with empty name", domain.ErrCatalogInvalid)
		}
		intensity, err := domain.ParseIntensity(string(food.Intensity))
		if err != nil {
			return nil, fmt.Errorf("food %q: %w", food.Name, err)
		}
		food.Intensity = intensity
		if _, dup := c.foodIndex[food.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate food %q", domain.ErrCatalogInvalid, food.Name)
		}
		food.Flavors = slices.Clone(food.Flavors)
		c.foodIndex[food.Name] = len(c.foods)
		c.foods = append(c.foods, food)
	}

	for _, kw := range data.Keywords {
		key := strings.ToLower(strings.TrimSpace(kw.Keyword))
		if key == "" {
			return nil, fmt.Errorf("%w: empty keyword", domain.ErrCatalogInvalid)
		}
		if len(kw.Wines) == 0 {
			return nil, fmt.Errorf("%w: keyword %q has no wines", domain.ErrCatalogInvalid, key)
		}
		c.keywords = append(c.keywords, domain.KeywordPairing{Keyword: key, Wines: slices.Clone(kw.Wines)})
	}

	return c, nil
}

// MustNew is like New but panics on invalid data. Intended for static tables.
func MustNew(data domain.CatalogData) *Catalog {
	c, err := New(data)
	if err != nil {
		panic(err)
	}
	return c
}

// normalizeWine checks every enum field and returns the wine with canonical values
func normalizeWine(wine domain.WineProfile) (domain.WineProfile, error) {
	if strings.TrimSpace(wine.Name) == "" {
		return wine, fmt.Errorf("%w: wine with empty name", domain.ErrCatalogInvalid)
	}
	var err error
	if wine.Type, err = domain.ParseWineType(string(wine.Type)); err != nil {
		return wine, fmt.Errorf("wine %q: %w", wine.Name, err)
	}
	if wine.Body, err = domain.ParseBody(string(wine.Body)); err != nil {
		return wine, fmt.Errorf("wine %q: %w", wine.Name, err)
	}
	if wine.Sweetness, err = domain.ParseSweetness(string(wine.Sweetness)); err != nil {
		return wine, fmt.Errorf("wine %q: %w", wine.Name, err)
	}
	if wine.Acidity, err = domain.ParseLevel(string(wine.Acidity)); err != nil {
		return wine, fmt.Errorf("wine %q acidity: %w", wine.Name, err)
	}
	if wine.Tannins, err = domain.ParseLevel(string(wine.Tannins)); err != nil {
		return wine, fmt.Errorf("wine %q tannins: %w", wine.Name, err)
	}
	return wine, nil
}

// NormalizeFoodName folds a food name to its catalog key form
func NormalizeFoodName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LookupWine finds a wine by exact, case-sensitive name
func (c *Catalog) LookupWine(name string) (domain.WineProfile, bool) {
	i, ok := c.wineIndex[name]
	if !ok {
		return domain.WineProfile{}, false
	}
	return c.wines[i], true
}

// LookupFood finds a food by case-insensitive name
func (c *Catalog) LookupFood(name string) (domain.FoodProfile, bool) {
	i, ok := c.foodIndex[NormalizeFoodName(name)]
	if !ok {
		return domain.FoodProfile{}, false
	}
	food := c.foods[i]
	food.Flavors = slices.Clone(food.Flavors)
	return food, true
}

// Wines returns all wine profiles in catalog order
func (c *Catalog) Wines() []domain.WineProfile {
	return slices.Clone(c.wines)
}

// Foods returns all food profiles in catalog order
func (c *Catalog) Foods() []domain.FoodProfile {
	foods := make([]domain.FoodProfile, len(c.foods))
	for i, f := range c.foods {
		f.Flavors = slices.Clone(f.Flavors)
		foods[i] = f
	}
	return foods
}

// Keywords returns the keyword fallback table in lookup order
func (c *Catalog) Keywords() []domain.KeywordPairing {
	out := make([]domain.KeywordPairing, len(c.keywords))
	for i, kw := range c.keywords {
		out[i] = domain.KeywordPairing{Keyword: kw.Keyword, Wines: slices.Clone(kw.Wines)}
	}
	return out
}

// Size reports the number of wines and foods
func (c *Catalog) Size() (wines, foods int) {
	return len(c.wines), len(c.foods)
}

var _ domain.Catalog = (*Catalog)(nil)
