package compiler

import (
	"strings"

	"github.com/hammamikhairi/sproutchef/internal/domain"
)

// defaultAliases lists the instruction phrasings that differ from a
// vegetable's display name. Entries are lowercase.
var defaultAliases = map[domain.Vegetable][]string{
	domain.Broccoli:         {"floret"},
	domain.RedBellPepper:    {"bell pepper"},
	domain.YellowBellPepper: {"bell pepper"},
	domain.GreenBeans:       {"green bean"},
	domain.SweetPotato:      {"sweet potato"},
}

// Resolver decides whether an instruction line refers to a vegetable.
// Matching is plain lowercase substring containment; there is no
// stemming and no fuzzy matching.
type Resolver struct {
	aliases map[domain.Vegetable][]string
}

// NewResolver creates a resolver with the built-in alias table plus any
// extra aliases given.
func NewResolver(extra map[domain.Vegetable][]string) *Resolver {
	aliases := make(map[domain.Vegetable][]string, len(defaultAliases)+len(extra))
	for v, a := range defaultAliases {
		aliases[v] = append([]string(nil), a...)
	}
	for v, a := range extra {
		for _, alias := range a {
			aliases[v] = append(aliases[v], strings.ToLower(alias))
		}
	}
	return &Resolver{aliases: aliases}
}

// Matches reports whether line mentions v by name or by alias.
func (r *Resolver) Matches(line string, v domain.Vegetable) bool {
	lower := strings.ToLower(line)
	if strings.Contains(lower, strings.ToLower(v.DisplayName())) {
		return true
	}
	for _, alias := range r.aliases[v] {
		if strings.Contains(lower, alias) {
			return true
		}
	}
	return false
}

var defaultResolver = NewResolver(nil)

// Matches reports whether line mentions v, using the built-in aliases.
func Matches(line string, v domain.Vegetable) bool {
	return defaultResolver.Matches(line, v)
}
