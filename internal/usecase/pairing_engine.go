package usecase

import (
	"fmt"
	"slices"
	"strings"

	"github.com/winepair/backend/internal/catalog"
	"github.com/winepair/backend/internal/domain"
	"github.com/winepair/backend/internal/logging"
)

// Rule weights for the food -> wine direction
const (
	intensityMatchPoints = 3
	categoryMatchPoints  = 2
	acidityMatchPoints   = 1
	tanninMatchPoints    = 1
)

// Rule weights for the wine -> food direction
const (
	bodyMatchPoints = 2
	typeMatchPoints = 2
)

// Inclusion thresholds
const (
	wineScoreThreshold = 3
	foodScoreThreshold = 2
)

// Fixed reasoning strings for the fallback paths
const (
	defaultWinesReasoning = "Versatile wines that pair with most foods"
	defaultFoodsReasoning = "Versatile foods that pair with most wines"
	keywordReasoningFmt   = "Traditional pairing for %s"
)

// rule adds points and a reason when match holds for the pair (a, b)
type rule[A, B any] struct {
	points int
	reason string
	match  func(A, B) bool
}

// ruleGroup is a set of mutually exclusive rules; the first match wins
type ruleGroup[A, B any] []rule[A, B]

var foodToWineRules = []ruleGroup[domain.FoodProfile, domain.WineProfile]{
	{
		{intensityMatchPoints, "bold food pairs with full-bodied wine", func(f domain.FoodProfile, w domain.WineProfile) bool {
			return f.Intensity == domain.IntensityBold && w.Body == domain.BodyFull
		}},
		{intensityMatchPoints, "light food pairs with light wine", func(f domain.FoodProfile, w domain.WineProfile) bool {
			return f.Intensity == domain.IntensityLight && w.Body == domain.BodyLight
		}},
		{intensityMatchPoints, "medium intensity food pairs with medium-bodied wine", func(f domain.FoodProfile, w domain.WineProfile) bool {
			return f.Intensity == domain.IntensityMedium && w.Body == domain.BodyMedium
		}},
	},
	{
		{categoryMatchPoints, "red meat traditionally pairs with red wine", func(f domain.FoodProfile, w domain.WineProfile) bool {
			return f.Category == domain.CategoryRedMeat && w.Type == domain.WineRed
		}},
		{categoryMatchPoints, "fish pairs well with white wine", func(f domain.FoodProfile, w domain.WineProfile) bool {
			return f.Category == domain.CategoryFish && w.Type == domain.WineWhite
		}},
		{categoryMatchPoints, "dessert pairs with sweet wine", func(f domain.FoodProfile, w domain.WineProfile) bool {
			return f.Category == domain.CategoryDessert && w.Sweetness == domain.SweetnessSweet
		}},
	},
	{
		{acidityMatchPoints, "high acidity wine cuts through acidic food", func(f domain.FoodProfile, w domain.WineProfile) bool {
			return f.HasFlavor(domain.FlavorAcidic) && w.Acidity == domain.LevelHigh
		}},
	},
	{
		{tanninMatchPoints, "tannins cut through fatty food", func(f domain.FoodProfile, w domain.WineProfile) bool {
			return f.HasFlavor(domain.FlavorFatty) && w.Tannins == domain.LevelHigh
		}},
	},
}

var wineToFoodRules = []ruleGroup[domain.WineProfile, domain.FoodProfile]{
	{
		{bodyMatchPoints, "full-bodied wine pairs with bold food", func(w domain.WineProfile, f domain.FoodProfile) bool {
			return w.Body == domain.BodyFull && f.Intensity == domain.IntensityBold
		}},
		{bodyMatchPoints, "light wine pairs with light food", func(w domain.WineProfile, f domain.FoodProfile) bool {
			return w.Body == domain.BodyLight && f.Intensity == domain.IntensityLight
		}},
	},
	{
		{typeMatchPoints, "red wine pairs with red meat", func(w domain.WineProfile, f domain.FoodProfile) bool {
			return w.Type == domain.WineRed && f.Category == domain.CategoryRedMeat
		}},
		{typeMatchPoints, "white wine pairs with fish", func(w domain.WineProfile, f domain.FoodProfile) bool {
			return w.Type == domain.WineWhite && f.Category == domain.CategoryFish
		}},
		{typeMatchPoints, "sparkling wine pairs with appetizers", func(w domain.WineProfile, f domain.FoodProfile) bool {
			return w.Type == domain.WineSparkling && f.Category == domain.CategoryAppetizer
		}},
	},
}

// evaluate applies every rule group to (a, b), accumulating points and the
// reasons of the rules that fired, in rule order.
func evaluate[A, B any](groups []ruleGroup[A, B], a A, b B) (int, []string) {
	score := 0
	var reasons []string
	for _, group := range groups {
		for _, r := range group {
			if r.match(a, b) {
				score += r.points
				reasons = append(reasons, r.reason)
				break
			}
		}
	}
	return score, reasons
}

// Candidate is a catalog entry that reached the inclusion threshold
type Candidate struct {
	Name    string
	Score   int
	Reasons []string
}

// EngineConfig holds configuration for the pairing engine
type EngineConfig struct {
	// RankByScore orders candidates by descending score (stable on catalog
	// order). When false, candidates keep catalog order.
	RankByScore        bool
	EnableDebugLogging bool
}

// Engine scores foods against wines and wines against foods over a catalog.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	catalog            domain.Catalog
	rankByScore        bool
	enableDebugLogging bool
}

// NewEngine creates a pairing engine over the given catalog
func NewEngine(c domain.Catalog, config EngineConfig) *Engine {
	return &Engine{
		catalog:            c,
		rankByScore:        config.RankByScore,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ScoreWines returns every catalog wine scoring at least the wine threshold against food
func (e *Engine) ScoreWines(food domain.FoodProfile) []Candidate {
	var candidates []Candidate
	for _, wine := range e.catalog.Wines() {
		score, reasons := evaluate(foodToWineRules, food, wine)

		if e.enableDebugLogging {
			logging.Debug().
				Str("food", food.Name).
				Str("wine", wine.Name).
				Int("score", score).
				Strs("reasons", reasons).
				Msg("scored wine")
		}

		if score >= wineScoreThreshold {
			candidates = append(candidates, Candidate{Name: wine.Name, Score: score, Reasons: reasons})
		}
	}
	return e.rank(candidates)
}

// ScoreFoods returns every catalog food scoring at least the food threshold against wine
func (e *Engine) ScoreFoods(wine domain.WineProfile) []Candidate {
	var candidates []Candidate
	for _, food := range e.catalog.Foods() {
		score, reasons := evaluate(wineToFoodRules, wine, food)

		if e.enableDebugLogging {
			logging.Debug().
				Str("wine", wine.Name).
				Str("food", food.Name).
				Int("score", score).
				Strs("reasons", reasons).
				Msg("scored food")
		}

		if score >= foodScoreThreshold {
			candidates = append(candidates, Candidate{Name: food.Name, Score: score, Reasons: reasons})
		}
	}
	return e.rank(candidates)
}

func (e *Engine) rank(candidates []Candidate) []Candidate {
	if e.rankByScore {
		slices.SortStableFunc(candidates, func(a, b Candidate) int {
			return b.Score - a.Score
		})
	}
	return candidates
}

// KeywordPairing searches the keyword table for query. A keyword matches when
// the query contains it, or when it contains the first word of the query.
func (e *Engine) KeywordPairing(query string) (domain.PairingResult, bool) {
	q := NormalizeQuery(query)
	token := firstToken(q)

	for _, kw := range e.catalog.Keywords() {
		if (q != "" && strings.Contains(q, kw.Keyword)) || (token != "" && strings.Contains(kw.Keyword, token)) {
			return domain.PairingResult{
				Items:     capItems(kw.Wines),
				Reasoning: fmt.Sprintf(keywordReasoningFmt, kw.Keyword),
				Strategy:  domain.StrategyKeyword,
			}, true
		}
	}
	return domain.PairingResult{}, false
}

// DefaultWines is the last resort of the food -> wine direction
func DefaultWines() domain.PairingResult {
	return domain.PairingResult{
		Items:     slices.Clone(catalog.DefaultWines),
		Reasoning: defaultWinesReasoning,
		Strategy:  domain.StrategyDefault,
	}
}

// DefaultFoods is returned for wines missing from the catalog
func DefaultFoods() domain.PairingResult {
	return domain.PairingResult{
		Items:     slices.Clone(catalog.DefaultFoods),
		Reasoning: defaultFoodsReasoning,
		Strategy:  domain.StrategyDefault,
	}
}

// buildResult caps candidates and renders the reasoning as
// "<name>: <reason>, <reason>" segments joined by "; ".
func buildResult(candidates []Candidate) domain.PairingResult {
	if len(candidates) > domain.MaxPairingItems {
		candidates = candidates[:domain.MaxPairingItems]
	}

	items := make([]string, 0, len(candidates))
	segments := make([]string, 0, len(candidates))
	for _, c := range candidates {
		items = append(items, c.Name)
		segments = append(segments, fmt.Sprintf("%s: %s", c.Name, strings.Join(c.Reasons, ", ")))
	}

	return domain.PairingResult{
		Items:     items,
		Reasoning: strings.Join(segments, "; "),
		Strategy:  domain.StrategyScored,
	}
}

func capItems(items []string) []string {
	if len(items) > domain.MaxPairingItems {
		items = items[:domain.MaxPairingItems]
	}
	return slices.Clone(items)
}
