// Package domain defines the core types and interfaces for the kitchen.
// All other packages depend on domain; domain depends on nothing.
package domain

import "strings"

// Recipe is one cooking attempt's worth of ingredients and instructions.
// Recipes are supplied by a RecipeSource and never mutated afterwards.
type Recipe struct {
	ID              string
	Title           string
	Description     string
	Garden          []Vegetable
	Pantry          []PantryItem
	Instructions    []string
	Difficulty      Difficulty
	CookTimeMinutes int
	Tags            []string
}

// HasPantry reports whether the recipe lists the given pantry item.
func (r Recipe) HasPantry(item PantryItem) bool {
	for _, p := range r.Pantry {
		if p == item {
			return true
		}
	}
	return false
}

// HasGarden reports whether the recipe lists the given vegetable.
func (r Recipe) HasGarden(v Vegetable) bool {
	for _, g := range r.Garden {
		if g == v {
			return true
		}
	}
	return false
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	ID          string
	Title       string
	Description string
	Difficulty  Difficulty
	Tags        []string
}

// Summary returns the listing view of the recipe.
func (r Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Difficulty:  r.Difficulty,
		Tags:        r.Tags,
	}
}

// Difficulty grades a recipe. It picks the cook timer length.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// String returns a human-readable difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty converts a difficulty name to a Difficulty.
// The second return value is false for unrecognized names.
func ParseDifficulty(name string) (Difficulty, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	default:
		return Easy, false
	}
}
