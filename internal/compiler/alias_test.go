package compiler

import (
	"testing"

	"github.com/hammamikhairi/sproutchef/internal/domain"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		line string
		veg  domain.Vegetable
		want bool
	}{
		{"Chop the TOMATO into wedges.", domain.Tomato, true},
		{"Chop the tomatoes.", domain.Tomato, true},
		{"Cut the florets off the stalk.", domain.Broccoli, true},
		{"Slice the bell pepper into strips.", domain.RedBellPepper, true},
		{"Slice the bell pepper into strips.", domain.YellowBellPepper, true},
		{"Snap the ends off each green bean.", domain.GreenBeans, true},
		{"Peel the sweet potato.", domain.SweetPotato, true},
		// Substring matching: "potato" is inside "sweet potato".
		{"Peel the sweet potato.", domain.Potato, true},
		{"Season with pepper.", domain.RedBellPepper, false},
		{"Wash the lettuce.", domain.Cucumber, false},
		{"", domain.Onion, false},
	}

	for _, tt := range tests {
		t.Run(tt.line+"/"+tt.veg.String(), func(t *testing.T) {
			if got := Matches(tt.line, tt.veg); got != tt.want {
				t.Errorf("Matches(%q, %s) = %v, want %v", tt.line, tt.veg, got, tt.want)
			}
		})
	}
}

func TestResolverExtraAliases(t *testing.T) {
	r := NewResolver(map[domain.Vegetable][]string{
		domain.Zucchini: {"Courgette"},
	})

	if !r.Matches("Grate the courgette.", domain.Zucchini) {
		t.Fatal("expected extra alias to match")
	}
	if !r.Matches("Cut the florets.", domain.Broccoli) {
		t.Fatal("expected built-in alias to survive extra aliases")
	}
	if Matches("Grate the courgette.", domain.Zucchini) {
		t.Fatal("extra aliases must not leak into the default resolver")
	}
}
