package usecase

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winepair/backend/internal/catalog"
	"github.com/winepair/backend/internal/domain"
)

func newTestPairingService() *PairingService {
	return NewPairingService(catalog.Default(), EngineConfig{})
}

func TestFindWinePairings(t *testing.T) {
	svc := newTestPairingService()

	tests := []struct {
		name          string
		food          string
		wantItems     []string
		wantReasoning string
		wantStrategy  domain.Strategy
	}{
		{
			name:      "steak scores full-bodied wines",
			food:      "steak",
			wantItems: []string{"Cabernet Sauvignon", "Malbec", "Syrah", "Chardonnay", "Port"},
			wantReasoning: "Cabernet Sauvignon: bold food pairs with full-bodied wine, red meat traditionally pairs with red wine; " +
				"Malbec: bold food pairs with full-bodied wine, red meat traditionally pairs with red wine; " +
				"Syrah: bold food pairs with full-bodied wine, red meat traditionally pairs with red wine; " +
				"Chardonnay: bold food pairs with full-bodied wine; " +
				"Port: bold food pairs with full-bodied wine",
			wantStrategy: domain.StrategyScored,
		},
		{
			name:      "chicken scores light wines",
			food:      "Chicken",
			wantItems: []string{"Pinot Noir", "Sauvignon Blanc", "Pinot Grigio", "Riesling", "Champagne"},
			wantReasoning: "Pinot Noir: light food pairs with light wine; " +
				"Sauvignon Blanc: light food pairs with light wine; " +
				"Pinot Grigio: light food pairs with light wine; " +
				"Riesling: light food pairs with light wine; " +
				"Champagne: light food pairs with light wine",
			wantStrategy: domain.StrategyScored,
		},
		{
			name:          "known food without qualifying wine falls back to keywords",
			food:          "salmon",
			wantItems:     []string{"Pinot Noir", "Chardonnay", "Sauvignon Blanc"},
			wantReasoning: "Traditional pairing for salmon",
			wantStrategy:  domain.StrategyKeyword,
		},
		{
			name:          "pasta falls back to keywords",
			food:          "PASTA",
			wantItems:     []string{"Pinot Noir", "Chardonnay", "Pinot Grigio"},
			wantReasoning: "Traditional pairing for pasta",
			wantStrategy:  domain.StrategyKeyword,
		},
		{
			name:          "unknown food uses keyword table",
			food:          "Braised Lamb Shank",
			wantItems:     []string{"Syrah", "Cabernet Sauvignon", "Pinot Noir"},
			wantReasoning: "Traditional pairing for lamb",
			wantStrategy:  domain.StrategyKeyword,
		},
		{
			name:          "unknown food without keyword gets defaults",
			food:          "xyzzy",
			wantItems:     []string{"Pinot Noir", "Chardonnay", "Sauvignon Blanc"},
			wantReasoning: "Versatile wines that pair with most foods",
			wantStrategy:  domain.StrategyDefault,
		},
		{
			name:          "empty string gets defaults",
			food:          "",
			wantItems:     []string{"Pinot Noir", "Chardonnay", "Sauvignon Blanc"},
			wantReasoning: "Versatile wines that pair with most foods",
			wantStrategy:  domain.StrategyDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.FindWinePairings(tt.food)
			assert.Equal(t, tt.wantItems, result.Items)
			assert.Equal(t, tt.wantReasoning, result.Reasoning)
			assert.Equal(t, tt.wantStrategy, result.Strategy)
		})
	}
}

func TestFindWinePairings_UnknownInputsGetDefaults(t *testing.T) {
	svc := newTestPairingService()
	want := DefaultWines()

	for _, food := range []string{"xyzzy", "qwerty uiop", "zzz", "   ", "\t\n", "12345"} {
		t.Run(fmt.Sprintf("%q", food), func(t *testing.T) {
			assert.Equal(t, want, svc.FindWinePairings(food))
		})
	}
}

func TestFindWinePairings_SteakIncludesFullBodiedRed(t *testing.T) {
	svc := newTestPairingService()
	c := catalog.Default()

	result := svc.FindWinePairings("steak")
	assert.Contains(t, result.Items, "Cabernet Sauvignon")

	for _, name := range result.Items {
		_, ok := c.LookupWine(name)
		assert.True(t, ok, "%s should be a catalog wine", name)
	}
}

func TestFindFoodPairings(t *testing.T) {
	svc := newTestPairingService()

	t.Run("cabernet includes red meat", func(t *testing.T) {
		result := svc.FindFoodPairings("Cabernet Sauvignon")
		assert.Equal(t, []string{"steak", "cheese", "chocolate"}, result.Items)
		assert.Equal(t,
			"steak: full-bodied wine pairs with bold food, red wine pairs with red meat; "+
				"cheese: full-bodied wine pairs with bold food; "+
				"chocolate: full-bodied wine pairs with bold food",
			result.Reasoning)
		assert.Equal(t, domain.StrategyScored, result.Strategy)
	})

	t.Run("wine lookup is case sensitive", func(t *testing.T) {
		result := svc.FindFoodPairings("cabernet sauvignon")
		assert.Equal(t, DefaultFoods(), result)
	})

	t.Run("unknown wine gets default foods", func(t *testing.T) {
		result := svc.FindFoodPairings("Zinfandel")
		assert.Equal(t, []string{"chicken", "pasta", "cheese"}, result.Items)
		assert.Equal(t, "Versatile foods that pair with most wines", result.Reasoning)
		assert.Equal(t, domain.StrategyDefault, result.Strategy)
	})

	t.Run("empty wine gets default foods", func(t *testing.T) {
		assert.Equal(t, DefaultFoods(), svc.FindFoodPairings(""))
	})
}

func TestFindFoodPairings_KnownWineWithoutMatchesIsNotBackfilled(t *testing.T) {
	c := catalog.MustNew(domain.CatalogData{
		Wines: []domain.WineProfile{
			{Name: "Tavel", Type: domain.WineRose, Body: domain.BodyMedium, Sweetness: domain.SweetnessDry, Acidity: domain.LevelMedium, Tannins: domain.LevelLow},
		},
		Foods: []domain.FoodProfile{
			{Name: "steak", Category: domain.CategoryRedMeat, Intensity: domain.IntensityBold},
		},
		Keywords: catalog.BuiltinKeywords(),
	})
	svc := NewPairingService(c, EngineConfig{})

	result := svc.FindFoodPairings("Tavel")
	assert.Empty(t, result.Items)
	assert.NotNil(t, result.Items)
	assert.Equal(t, "", result.Reasoning)
	assert.Equal(t, domain.StrategyScored, result.Strategy)
}

func TestFindFoodPairings_ReasoningHasOneSegmentPerItem(t *testing.T) {
	svc := newTestPairingService()

	for _, wine := range svc.Wines() {
		t.Run(wine.Name, func(t *testing.T) {
			result := svc.FindFoodPairings(wine.Name)
			assert.LessOrEqual(t, len(result.Items), domain.MaxPairingItems)
			if len(result.Items) == 0 {
				assert.Empty(t, result.Reasoning)
				return
			}
			segments := strings.Split(result.Reasoning, "; ")
			require.Len(t, segments, len(result.Items))
			for i, item := range result.Items {
				assert.True(t, strings.HasPrefix(segments[i], item+": "), "segment %q should start with %q", segments[i], item)
			}
		})
	}
}

func TestPairingResultsNeverExceedCap(t *testing.T) {
	var wines []domain.WineProfile
	var foods []domain.FoodProfile
	for i := 0; i < 8; i++ {
		wines = append(wines, domain.WineProfile{
			Name: fmt.Sprintf("Red %d", i), Type: domain.WineRed, Body: domain.BodyFull,
			Sweetness: domain.SweetnessDry, Acidity: domain.LevelMedium, Tannins: domain.LevelHigh,
		})
		foods = append(foods, domain.FoodProfile{
			Name: fmt.Sprintf("roast %d", i), Category: domain.CategoryRedMeat, Intensity: domain.IntensityBold,
		})
	}
	svc := NewPairingService(catalog.MustNew(domain.CatalogData{Wines: wines, Foods: foods}), EngineConfig{})

	winesResult := svc.FindWinePairings("roast 0")
	assert.Equal(t, []string{"Red 0", "Red 1", "Red 2", "Red 3", "Red 4"}, winesResult.Items)
	assert.Len(t, strings.Split(winesResult.Reasoning, "; "), domain.MaxPairingItems)

	foodsResult := svc.FindFoodPairings("Red 0")
	assert.Len(t, foodsResult.Items, domain.MaxPairingItems)

	for _, food := range []string{"steak", "", "roast", "fish", "anything at all"} {
		assert.LessOrEqual(t, len(svc.FindWinePairings(food).Items), domain.MaxPairingItems)
	}
}

func TestPairingQueriesAreIdempotent(t *testing.T) {
	svc := newTestPairingService()

	for _, input := range []string{"steak", "salmon", "", "xyzzy", "Port", "Cabernet Sauvignon", "lamb curry"} {
		t.Run(input, func(t *testing.T) {
			assert.Equal(t, svc.FindWinePairings(input), svc.FindWinePairings(input))
			assert.Equal(t, svc.FindFoodPairings(input), svc.FindFoodPairings(input))
		})
	}
}

func TestPairingService_ConcurrentQueries(t *testing.T) {
	svc := newTestPairingService()
	want := svc.FindWinePairings("steak")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, want, svc.FindWinePairings("steak"))
			_ = svc.FindFoodPairings("Port")
		}()
	}
	wg.Wait()
}

func TestWineDetails(t *testing.T) {
	svc := newTestPairingService()

	wine, err := svc.WineDetails("Port")
	require.NoError(t, err)
	assert.Equal(t, domain.SweetnessSweet, wine.Sweetness)

	_, err = svc.WineDetails("port")
	if !errors.Is(err, domain.ErrWineNotFound) {
		t.Errorf("error = %v, want ErrWineNotFound", err)
	}
}

func TestFoodDetails(t *testing.T) {
	svc := newTestPairingService()

	food, err := svc.FoodDetails("Cheese")
	require.NoError(t, err)
	assert.Equal(t, "dairy", food.Category)

	_, err = svc.FoodDetails("tofu")
	if !errors.Is(err, domain.ErrFoodNotFound) {
		t.Errorf("error = %v, want ErrFoodNotFound", err)
	}
}

func TestListCatalog(t *testing.T) {
	svc := newTestPairingService()

	assert.Len(t, svc.Wines(), 10)
	assert.Len(t, svc.Foods(), 6)
}
