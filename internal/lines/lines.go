// Package lines centralises every player-facing string.
// Edit this file to change the kitchen's personality. Keep lines short
// and cheerful; the players are kids.
package lines

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hammamikhairi/sproutchef/internal/domain"
)

// ── Greeting / Global ────────────────────────────────────────────

func Welcome() string {
	return "Welcome to the kitchen, little chef! What shall we cook?"
}

func Bye() string {
	return "See you next time, chef!"
}

func FirstVisit() string {
	return "A fresh apron! Let's cook something yummy."
}

// ── Recipe selection ─────────────────────────────────────────────

// RecipeSelected reads out the ingredients so the player can gather them.
func RecipeSelected(title string, ingredients []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s! You'll need: ", title)
	for i, ing := range ingredients {
		if i > 0 && i == len(ingredients)-1 {
			b.WriteString(" and ")
		} else if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ing)
	}
	b.WriteString(". Type start when you're ready.")
	return b.String()
}

func InvalidSelection(payload string) string {
	return fmt.Sprintf("Hmm, %s isn't on the menu. Pick a number from the list.", payload)
}

func PickRecipeFirst() string {
	return "Pick a recipe first."
}

func AlreadyCooking() string {
	return "You're already cooking! Type quit to stop first."
}

// ── Cooking session ──────────────────────────────────────────────

func CookingStart(title string) string {
	return fmt.Sprintf("Let's make %s!", title)
}

func NoSession() string {
	return "Nothing is cooking right now."
}

func NothingToCook() string {
	return "This recipe has nothing to do. That was easy!"
}

func WaitForNextStep() string {
	return "Hold on, the next step is coming!"
}

func Abandoned() string {
	return "Okay, we'll put the pans away."
}

func BadScore(input string) string {
	return fmt.Sprintf("%q isn't a score. Type a number from 0 to 100.", input)
}

func Unknown(input string) string {
	return fmt.Sprintf("Didn't catch that: %s.", input)
}

// Step builds the header for a step, e.g. "Step 2 of 8".
func Step(index, total int) string {
	return fmt.Sprintf("Step %d of %d", index+1, total)
}

// Reward announces the payout of a finished dish.
func Reward(r domain.Reward) string {
	return fmt.Sprintf("%s  +%d coins  +%d xp", Stars(r.Stars), r.Coins, r.XP)
}

// Stars renders a star rating out of three.
func Stars(n int) string {
	if n < 0 {
		n = 0
	}
	if n > 3 {
		n = 3
	}
	return strings.Repeat("★", n) + strings.Repeat("☆", 3-n)
}

func WalletLine(w domain.Wallet) string {
	return fmt.Sprintf("You have %d coins and %d xp.", w.Coins, w.XP)
}

func BestStarsLine(title string, stars int) string {
	if stars == 0 {
		return fmt.Sprintf("%s: not cooked yet.", title)
	}
	return fmt.Sprintf("%s: best %s", title, Stars(stars))
}

// ── Encouragement ────────────────────────────────────────────────
// Shown between steps. Randomized to avoid repetition.

var encouragement = []string{
	"Great job!",
	"Yummy, keep going!",
	"You're a natural!",
	"Wow, look at you cook!",
	"Nice work, chef!",
	"That smells amazing!",
	"Super!",
	"On to the next one!",
}

// Encouragement returns a random cheer. r may be nil.
func Encouragement(r *rand.Rand) string {
	if r == nil {
		return encouragement[rand.Intn(len(encouragement))]
	}
	return encouragement[r.Intn(len(encouragement))]
}

// Encouragements returns every cheer.
func Encouragements() []string {
	out := make([]string, len(encouragement))
	copy(out, encouragement)
	return out
}

// ── Step text ────────────────────────────────────────────────────
// Used by the compiler when the recipe has no sentence for a step.

func DefaultHeatPan() string {
	return "Put the pan on the stove and turn on the heat."
}

func DefaultAddFat(item domain.PantryItem) string {
	if item == domain.Butter {
		return "Melt the butter in the pan."
	}
	return fmt.Sprintf("Pour a little %s into the pan.", strings.ToLower(item.DisplayName()))
}

func DefaultCrack(item domain.PantryItem) string {
	return fmt.Sprintf("Crack the %s into a bowl.", strings.ToLower(item.DisplayName()))
}

func Prep(kind domain.StepKind, v domain.Vegetable) string {
	name := strings.ToLower(v.DisplayName())
	switch kind {
	case domain.KindWash:
		return fmt.Sprintf("Wash the %s.", name)
	case domain.KindPeel:
		return fmt.Sprintf("Peel the %s.", name)
	case domain.KindGrate:
		return fmt.Sprintf("Grate the %s.", name)
	case domain.KindDice:
		return fmt.Sprintf("Dice the %s into little cubes.", name)
	case domain.KindSlice:
		return fmt.Sprintf("Slice the %s.", name)
	default:
		return fmt.Sprintf("Chop the %s.", name)
	}
}

func AddToPan(name string) string {
	return fmt.Sprintf("Add the %s to the pan.", strings.ToLower(name))
}

func DefaultStir() string {
	return "Give it a good stir."
}

func Season(items []domain.PantryItem) string {
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = strings.ToLower(it.DisplayName())
	}
	switch len(names) {
	case 0:
		return "Add a pinch of seasoning."
	case 1:
		return fmt.Sprintf("Sprinkle in the %s.", names[0])
	default:
		return fmt.Sprintf("Sprinkle in the %s and %s.",
			strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
	}
}

func Cook(seconds int) string {
	return fmt.Sprintf("Let it cook for %d seconds. Watch the timer!", seconds)
}

// Flavor returns the in-character hint for a step kind.
func Flavor(kind domain.StepKind) string {
	switch kind {
	case domain.KindHeatPan:
		return "Careful, the pan gets hot!"
	case domain.KindAddFat:
		return "Sizzle sizzle!"
	case domain.KindWash:
		return "Scrub-a-dub, no dirt allowed!"
	case domain.KindPeel:
		return "Peel it nice and slow."
	case domain.KindGrate:
		return "Mind your fingers!"
	case domain.KindDice:
		return "Tiny cubes, tiny chef!"
	case domain.KindSlice:
		return "Thin and even wins the race."
	case domain.KindChop:
		return "Chop chop chop!"
	case domain.KindCrack:
		return "Tap, crack, plop! No shells please."
	case domain.KindAddToPan:
		return "Into the pan it goes!"
	case domain.KindStir:
		return "Round and round we go!"
	case domain.KindSeason:
		return "Just a pinch makes it yummy."
	case domain.KindCook:
		return "Patience makes it tasty."
	case domain.KindAssemble:
		return "Make it look pretty!"
	default:
		return ""
	}
}
