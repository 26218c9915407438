// Package conversation provides intent parsing and terminal presentation.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches player input to intents using keywords and simple
// patterns.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
	// payload is the capture group carried as the intent payload, 0 for none.
	payload int
}

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(list|recipes|menu|show|browse)$`), domain.IntentListRecipes, 0},
		{regexp.MustCompile(`(?i)^(?:pick|select|choose)\s+(.+)$`), domain.IntentSelectRecipe, 1},
		{regexp.MustCompile(`(?i)^(start|cook|go|begin|let'?s go|let'?s cook)$`), domain.IntentStartCooking, 0},
		{regexp.MustCompile(`(?i)^(?:score|s)\s+(-?\d+)$`), domain.IntentScore, 1},
		{regexp.MustCompile(`(?i)^(auto|play|a)$`), domain.IntentAutoScore, 0},
		{regexp.MustCompile(`(?i)^(repeat|again|what\??|r)$`), domain.IntentRepeat, 0},
		{regexp.MustCompile(`(?i)^(status|where|progress|info)$`), domain.IntentStatus, 0},
		{regexp.MustCompile(`(?i)^(wallet|coins|xp)$`), domain.IntentWallet, 0},
		{regexp.MustCompile(`(?i)^(stars|best)$`), domain.IntentStars, 0},
		{regexp.MustCompile(`(?i)^(abandon|stop|give up)$`), domain.IntentAbandon, 0},
		{regexp.MustCompile(`(?i)^(quit|exit|q|bye)$`), domain.IntentQuit, 0},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.IntentHelp, 0},
	}
	return p
}

// Parse converts player input into an intent. A bare number is a recipe
// selection; the shell reads it as a score while a step is playing.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	if len(trimmed) <= 3 && isDigits(trimmed) {
		return &domain.Intent{Type: domain.IntentSelectRecipe, Payload: trimmed}, nil
	}

	for _, rule := range p.patterns {
		m := rule.regex.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		p.log.Debug("matched intent: %s", rule.intent)
		if rule.payload > 0 {
			return &domain.Intent{Type: rule.intent, Payload: strings.TrimSpace(m[rule.payload])}, nil
		}
		return &domain.Intent{Type: rule.intent}, nil
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
