package domain

import (
	"fmt"
	"strings"
)

// StepKind is the discriminant of a StepType.
type StepKind int

const (
	KindHeatPan StepKind = iota
	KindAddFat
	KindWash
	KindPeel
	KindGrate
	KindDice
	KindSlice
	KindChop
	KindCrack
	KindAddToPan
	KindStir
	KindSeason
	KindCook
	KindAssemble
)

// String returns a human-readable step kind.
func (k StepKind) String() string {
	switch k {
	case KindHeatPan:
		return "heat_pan"
	case KindAddFat:
		return "add_fat"
	case KindWash:
		return "wash"
	case KindPeel:
		return "peel"
	case KindGrate:
		return "grate"
	case KindDice:
		return "dice"
	case KindSlice:
		return "slice"
	case KindChop:
		return "chop"
	case KindCrack:
		return "crack"
	case KindAddToPan:
		return "add_to_pan"
	case KindStir:
		return "stir"
	case KindSeason:
		return "season"
	case KindCook:
		return "cook"
	case KindAssemble:
		return "assemble"
	default:
		return "unknown"
	}
}

// IsPrep reports whether the kind acts on a single garden vegetable.
func (k StepKind) IsPrep() bool {
	switch k {
	case KindWash, KindPeel, KindGrate, KindDice, KindSlice, KindChop:
		return true
	}
	return false
}

// Phase returns the canonical phase rank of the kind. Compiled steps are
// ordered by non-decreasing phase.
func (k StepKind) Phase() int {
	switch {
	case k == KindHeatPan:
		return 0
	case k == KindAddFat:
		return 1
	case k.IsPrep():
		return 2
	case k == KindCrack:
		return 3
	case k == KindAddToPan:
		return 4
	case k == KindStir:
		return 5
	case k == KindSeason:
		return 6
	case k == KindCook:
		return 7
	default:
		return 8
	}
}

// StepType is a closed variant: Kind selects which payload fields are
// meaningful. Build values only through the constructors below.
type StepType struct {
	Kind      StepKind
	Vegetable Vegetable    // Wash, Peel, Grate, Dice, Slice, Chop
	Item      PantryItem   // AddFat, Crack
	Items     []PantryItem // Season
	Name      string       // AddToPan display name
	Image     string       // AddToPan image reference
	Seconds   int          // Cook
	Text      string       // Assemble
}

// HeatPan puts the pan on the stove.
func HeatPan() StepType { return StepType{Kind: KindHeatPan} }

// AddFat melts butter or pours oil into the pan.
func AddFat(item PantryItem) StepType { return StepType{Kind: KindAddFat, Item: item} }

// Wash rinses a vegetable.
func Wash(v Vegetable) StepType { return StepType{Kind: KindWash, Vegetable: v} }

// Peel takes the skin off a vegetable.
func Peel(v Vegetable) StepType { return StepType{Kind: KindPeel, Vegetable: v} }

// Grate shreds a vegetable.
func Grate(v Vegetable) StepType { return StepType{Kind: KindGrate, Vegetable: v} }

// Dice cuts a vegetable into small cubes.
func Dice(v Vegetable) StepType { return StepType{Kind: KindDice, Vegetable: v} }

// Slice cuts a vegetable into thin pieces.
func Slice(v Vegetable) StepType { return StepType{Kind: KindSlice, Vegetable: v} }

// Chop cuts, chops or tears a vegetable.
func Chop(v Vegetable) StepType { return StepType{Kind: KindChop, Vegetable: v} }

// Crack breaks eggs into a bowl.
func Crack(item PantryItem) StepType { return StepType{Kind: KindCrack, Item: item} }

// AddToPan puts a named ingredient into the pan.
func AddToPan(name, image string) StepType {
	return StepType{Kind: KindAddToPan, Name: name, Image: image}
}

// Stir mixes whatever is in the pan.
func Stir() StepType { return StepType{Kind: KindStir} }

// Season bundles every seasoning into a single step. The slice is copied.
func Season(items []PantryItem) StepType {
	return StepType{Kind: KindSeason, Items: append([]PantryItem(nil), items...)}
}

// Cook runs the cooking timer for the given number of seconds.
func Cook(seconds int) StepType { return StepType{Kind: KindCook, Seconds: seconds} }

// Assemble finishes the dish using the recipe's own closing sentence.
func Assemble(text string) StepType { return StepType{Kind: KindAssemble, Text: text} }

// String renders the variant for logs and tests, e.g. "chop(Tomato)".
func (t StepType) String() string {
	switch {
	case t.Kind.IsPrep():
		return fmt.Sprintf("%s(%s)", t.Kind, t.Vegetable)
	case t.Kind == KindAddFat, t.Kind == KindCrack:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Item)
	case t.Kind == KindAddToPan:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Name)
	case t.Kind == KindSeason:
		names := make([]string, len(t.Items))
		for i, it := range t.Items {
			names[i] = it.DisplayName()
		}
		return fmt.Sprintf("%s(%s)", t.Kind, strings.Join(names, ", "))
	case t.Kind == KindCook:
		return fmt.Sprintf("%s(%ds)", t.Kind, t.Seconds)
	default:
		return t.Kind.String()
	}
}

// CookingStep is one compiled, playable unit. Steps never change after
// compilation.
type CookingStep struct {
	Type        StepType
	Instruction string
	Flavor      string
}
