package recipe

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"

	"github.com/hammamikhairi/sproutchef/internal/domain"
)

// ErrInvalidCatalog is returned for a catalog that is not a JSON object
// with a "recipes" array.
var ErrInvalidCatalog = errors.New("invalid recipe catalog")

// LoadCatalog parses a JSON recipe catalog of the form
//
//	{"recipes": [{"id": "...", "title": "...", "garden": ["tomato"],
//	  "pantry": ["eggs"], "instructions": ["..."], "difficulty": "easy",
//	  "cookTimeMinutes": 10, "tags": ["..."]}]}
//
// Vegetable and pantry names go through domain.ParseVegetable and
// domain.ParsePantryItem; an unknown name fails the whole catalog.
func LoadCatalog(data []byte) ([]domain.Recipe, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed json", ErrInvalidCatalog)
	}
	list := gjson.GetBytes(data, "recipes")
	if !list.IsArray() {
		return nil, fmt.Errorf("%w: missing recipes array", ErrInvalidCatalog)
	}

	var (
		out []domain.Recipe
		err error
	)
	list.ForEach(func(_, v gjson.Result) bool {
		var r domain.Recipe
		r, err = parseRecipe(v)
		if err != nil {
			return false
		}
		out = append(out, r)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// LoadCatalogFile reads a catalog from disk and adds every recipe to src.
func LoadCatalogFile(ctx context.Context, path string, src *MemorySource) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading catalog: %w", err)
	}
	recipes, err := LoadCatalog(data)
	if err != nil {
		return 0, fmt.Errorf("loading %s: %w", path, err)
	}
	for _, r := range recipes {
		src.Add(ctx, r)
	}
	src.log.Info("loaded %d recipes from %s", len(recipes), path)
	return len(recipes), nil
}

func parseRecipe(v gjson.Result) (domain.Recipe, error) {
	id := v.Get("id").String()
	if id == "" {
		return domain.Recipe{}, fmt.Errorf("%w: recipe without id", ErrInvalidCatalog)
	}

	r := domain.Recipe{
		ID:              id,
		Title:           v.Get("title").String(),
		Description:     v.Get("description").String(),
		CookTimeMinutes: int(v.Get("cookTimeMinutes").Int()),
		Instructions:    readStrings(v.Get("instructions")),
		Tags:            readStrings(v.Get("tags")),
	}
	if r.Title == "" {
		r.Title = id
	}

	if d := v.Get("difficulty"); d.Exists() {
		diff, ok := domain.ParseDifficulty(d.String())
		if !ok {
			return domain.Recipe{}, fmt.Errorf("%w: recipe %s: unknown difficulty %q", ErrInvalidCatalog, id, d.String())
		}
		r.Difficulty = diff
	}

	for _, name := range readStrings(v.Get("garden")) {
		veg, ok := domain.ParseVegetable(name)
		if !ok {
			return domain.Recipe{}, fmt.Errorf("%w: recipe %s: garden: unknown vegetable %q", ErrInvalidCatalog, id, name)
		}
		r.Garden = append(r.Garden, veg)
	}
	for _, name := range readStrings(v.Get("pantry")) {
		item, ok := domain.ParsePantryItem(name)
		if !ok {
			return domain.Recipe{}, fmt.Errorf("%w: recipe %s: pantry: unknown item %q", ErrInvalidCatalog, id, name)
		}
		r.Pantry = append(r.Pantry, item)
	}
	return r, nil
}

func readStrings(v gjson.Result) []string {
	if !v.Exists() || !v.IsArray() {
		return nil
	}
	arr := v.Array()
	out := make([]string, len(arr))
	for i, item := range arr {
		out[i] = item.String()
	}
	return out
}
