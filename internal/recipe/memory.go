// Package recipe provides recipe source implementations.
package recipe

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeSource = (*MemorySource)(nil)

// MemorySource holds recipes in memory. Safe for concurrent reads.
type MemorySource struct {
	mu      sync.RWMutex
	recipes map[string]*domain.Recipe
	log     *logger.Logger
}

// NewMemorySource creates a recipe source preloaded with built-in recipes.
func NewMemorySource(log *logger.Logger) *MemorySource {
	src := &MemorySource{
		recipes: make(map[string]*domain.Recipe),
		log:     log,
	}
	src.seed()
	return src
}

// List returns summaries of all available recipes, sorted by title.
func (s *MemorySource) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	s.log.Debug("listing all recipes, count=%d", len(s.recipes))

	out := make([]domain.RecipeSummary, 0, len(s.recipes))
	for _, r := range s.recipes {
		out = append(out, r.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

// Get returns a copy of the recipe with the given ID.
func (s *MemorySource) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		s.log.Debug("recipe not found: %s", id)
		return nil, domain.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

// Add inserts or replaces a recipe.
func (s *MemorySource) Add(ctx context.Context, recipe domain.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[recipe.ID]; ok {
		s.log.Info("recipe replaced: %s", recipe.ID)
	}
	s.recipes[recipe.ID] = &recipe
}

// Search returns recipes whose title, description or tags contain the
// query string, sorted by title.
func (s *MemorySource) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	q := strings.ToLower(query)
	s.log.Debug("searching recipes for: %s", q)

	var out []domain.RecipeSummary
	for _, r := range s.recipes {
		if matches(r, q) {
			out = append(out, r.Summary())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func matches(r *domain.Recipe, query string) bool {
	if strings.Contains(strings.ToLower(r.Title), query) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), query) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// seed populates the source with built-in recipes.
func (s *MemorySource) seed() {
	recipes := []domain.Recipe{
		veggieScramble(),
		gardenSalad(),
		veggieStirFry(),
		cinnamonToast(),
		chickenRiceBowl(),
	}
	for i := range recipes {
		s.recipes[recipes[i].ID] = &recipes[i]
	}
	s.log.Debug("seeded %d recipes", len(recipes))
}

func veggieScramble() domain.Recipe {
	return domain.Recipe{
		ID:          "veggie-scramble",
		Title:       "Veggie Scramble",
		Description: "Fluffy scrambled eggs with tomato and onion.",
		Garden:      []domain.Vegetable{domain.Tomato, domain.Onion},
		Pantry:      []domain.PantryItem{domain.Eggs, domain.Butter, domain.Salt, domain.Pepper},
		Instructions: []string{
			"Crack the eggs into a bowl and whisk them with a fork.",
			"Chop the tomato and the onion into small pieces.",
			"Melt the butter in a pan and cook the eggs gently.",
			"Slide onto a plate and enjoy!",
		},
		Difficulty:      domain.Medium,
		CookTimeMinutes: 10,
		Tags:            []string{"breakfast", "eggs", "vegetarian"},
	}
}

func gardenSalad() domain.Recipe {
	return domain.Recipe{
		ID:          "garden-salad",
		Title:       "Rainbow Garden Salad",
		Description: "Crunchy vegetables straight from the garden. No stove needed!",
		Garden:      []domain.Vegetable{domain.Lettuce, domain.Cucumber, domain.Tomato, domain.Carrot},
		Pantry:      []domain.PantryItem{domain.OliveOil, domain.Salt},
		Instructions: []string{
			"Wash the lettuce and tear it into pieces.",
			"Slice the cucumber into rounds.",
			"Dice the tomato.",
			"Grate the carrot over the top.",
			"Drizzle with olive oil, add a pinch of salt and toss everything together.",
		},
		Difficulty:      domain.Easy,
		CookTimeMinutes: 0,
		Tags:            []string{"salad", "no-cook", "vegan"},
	}
}

func veggieStirFry() domain.Recipe {
	return domain.Recipe{
		ID:          "veggie-stir-fry",
		Title:       "Veggie Stir Fry",
		Description: "Colourful vegetables tossed in a hot pan with soy sauce.",
		Garden: []domain.Vegetable{
			domain.Broccoli, domain.RedBellPepper, domain.Carrot, domain.Onion, domain.Garlic,
		},
		Pantry: []domain.PantryItem{domain.VegetableOil, domain.SoySauce},
		Instructions: []string{
			"Heat the oil in a big pan.",
			"Chop the onion and the garlic.",
			"Cut the broccoli into florets.",
			"Slice the bell pepper and the carrot.",
			"Add the broccoli, bell pepper and carrot to the pan.",
			"Stir everything for a few minutes, then pour in the soy sauce.",
			"Serve it hot over rice.",
		},
		Difficulty:      domain.Medium,
		CookTimeMinutes: 15,
		Tags:            []string{"dinner", "vegan", "quick"},
	}
}

func cinnamonToast() domain.Recipe {
	return domain.Recipe{
		ID:          "cinnamon-toast",
		Title:       "Cinnamon Toast",
		Description: "Sweet, crunchy toast for a sleepy morning.",
		Pantry:      []domain.PantryItem{domain.Bread, domain.Butter, domain.Sugar, domain.Cinnamon},
		Instructions: []string{
			"Toast the bread in the toaster until golden.",
			"Spread the butter on the warm toast.",
			"Sprinkle the sugar and cinnamon on top.",
		},
		Difficulty:      domain.Easy,
		CookTimeMinutes: 3,
		Tags:            []string{"breakfast", "sweet", "no-cook"},
	}
}

func chickenRiceBowl() domain.Recipe {
	return domain.Recipe{
		ID:          "chicken-rice-bowl",
		Title:       "Chicken Rice Bowl",
		Description: "Golden chicken and crunchy vegetables on a pile of rice.",
		Garden:      []domain.Vegetable{domain.Carrot, domain.GreenBeans, domain.Onion},
		Pantry: []domain.PantryItem{
			domain.OliveOil, domain.Chicken, domain.Rice, domain.SoySauce, domain.Salt,
		},
		Instructions: []string{
			"Heat the olive oil in a pan.",
			"Dice the onion.",
			"Peel the carrot.",
			"Chop the green beans.",
			"Cook the chicken until it is golden.",
			"Add the carrot and green beans and stir.",
			"Spoon the rice into a bowl and top with everything.",
		},
		Difficulty:      domain.Hard,
		CookTimeMinutes: 25,
		Tags:            []string{"dinner", "chicken"},
	}
}
