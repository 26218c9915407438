// Package compiler turns a recipe's free-text instructions and ingredient
// lists into the ordered sequence of playable cooking steps.
//
// Compilation is a fixed pipeline of phases (heat, fat, prep, crack, add
// to pan, stir, season, cook, assemble) followed by a dedup pass. Every
// phase is keyword driven: lines are lowercased and searched for fixed
// verbs, and vegetables are found through the alias Resolver. The
// compiler never fails; a recipe that triggers nothing compiles to an
// empty slice.
package compiler

import (
	"strings"

	"github.com/hammamikhairi/sproutchef/internal/domain"
	"github.com/hammamikhairi/sproutchef/internal/lines"
)

// NoCookMinutes is the cook time at or below which a recipe is treated
// as raw or assembly only.
const NoCookMinutes = 5

var (
	heatVerbs    = []string{"cook", "heat", "melt", "bake", "roast", "fry", "simmer", "boil"}
	fatWords     = []string{"melt", "heat", "oil"}
	crackWords   = []string{"crack", "whisk"}
	addVerbs     = []string{"add", "pour", "toss"}
	proteinVerbs = []string{"cook", "add", "pour", "brown"}
	stirWords    = []string{"stir", "toss", "mix"}
	fatPriority  = []domain.PantryItem{domain.Butter, domain.OliveOil, domain.VegetableOil}
)

// prepRule maps verbs to a prep kind. Rules are checked in order and the
// first one with a matching verb wins.
type prepRule struct {
	kind  domain.StepKind
	verbs []string
}

var prepRules = []prepRule{
	{domain.KindWash, []string{"wash"}},
	{domain.KindPeel, []string{"peel"}},
	{domain.KindGrate, []string{"grate", "shred"}},
	{domain.KindDice, []string{"dice"}},
	{domain.KindSlice, []string{"slice"}},
	{domain.KindChop, []string{"chop", "cut", "tear"}},
}

// Option configures the compiler.
type Option func(*Compiler)

// WithResolver replaces the built-in alias resolver.
func WithResolver(r *Resolver) Option {
	return func(c *Compiler) {
		c.resolver = r
	}
}

// Compiler compiles recipes. It holds no per-recipe state and is safe
// for concurrent use.
type Compiler struct {
	resolver *Resolver
}

// New creates a compiler with the given options.
func New(opts ...Option) *Compiler {
	c := &Compiler{resolver: defaultResolver}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PhaseTrace reports what one phase did for a recipe.
type PhaseTrace struct {
	Name       string
	Suppressed bool // skipped because the recipe is no-cook
	Emitted    int  // steps produced before dedup
}

type phase struct {
	name string
	// cooked phases only run when the recipe needs the stove.
	cooked bool
	run    func(c *Compiler, r domain.Recipe, lower []string) []domain.CookingStep
}

var phases = []phase{
	{"heat_pan", true, (*Compiler).heatPan},
	{"add_fat", true, (*Compiler).addFat},
	{"prep", false, (*Compiler).prep},
	{"crack", false, (*Compiler).crack},
	{"add_to_pan", true, (*Compiler).addToPan},
	{"stir", true, (*Compiler).stir},
	{"season", false, (*Compiler).season},
	{"cook", true, (*Compiler).cook},
	{"assemble", false, (*Compiler).assemble},
}

// Compile produces the ordered, deduplicated step sequence for r. The
// same recipe always compiles to the same steps, and every call returns
// a fresh slice.
func (c *Compiler) Compile(r domain.Recipe) []domain.CookingStep {
	steps, _ := c.compile(r)
	return steps
}

// Trace compiles r and reports per-phase activity.
func (c *Compiler) Trace(r domain.Recipe) []PhaseTrace {
	_, trace := c.compile(r)
	return trace
}

func (c *Compiler) compile(r domain.Recipe) ([]domain.CookingStep, []PhaseTrace) {
	noCook := IsNoCook(r)

	lower := make([]string, len(r.Instructions))
	for i, line := range r.Instructions {
		lower[i] = strings.ToLower(line)
	}

	var steps []domain.CookingStep
	trace := make([]PhaseTrace, 0, len(phases))
	for _, p := range phases {
		if p.cooked && noCook {
			trace = append(trace, PhaseTrace{Name: p.name, Suppressed: true})
			continue
		}
		out := p.run(c, r, lower)
		trace = append(trace, PhaseTrace{Name: p.name, Emitted: len(out)})
		steps = append(steps, out...)
	}
	return dedup(steps), trace
}

// IsNoCook reports whether r skips the stove entirely.
func IsNoCook(r domain.Recipe) bool {
	return r.CookTimeMinutes <= NoCookMinutes
}

// CookSeconds returns the cook timer length for a difficulty.
func CookSeconds(d domain.Difficulty) int {
	switch d {
	case domain.Medium:
		return 8
	case domain.Hard:
		return 12
	default:
		return 5
	}
}

func (c *Compiler) heatPan(r domain.Recipe, lower []string) []domain.CookingStep {
	if !hasFat(r) && firstLineWith(lower, heatVerbs) < 0 {
		return nil
	}
	return []domain.CookingStep{newStep(domain.HeatPan(), lines.DefaultHeatPan())}
}

func (c *Compiler) addFat(r domain.Recipe, lower []string) []domain.CookingStep {
	for _, fat := range fatPriority {
		if !r.HasPantry(fat) {
			continue
		}
		text := lines.DefaultAddFat(fat)
		if i := firstLineWith(lower, fatWords); i >= 0 {
			text = r.Instructions[i]
		}
		return []domain.CookingStep{newStep(domain.AddFat(fat), text)}
	}
	return nil
}

// prep emits at most one step per (line, vegetable): the first verb
// category in priority order decides the kind.
func (c *Compiler) prep(r domain.Recipe, lower []string) []domain.CookingStep {
	var out []domain.CookingStep
	for _, line := range lower {
		for _, v := range r.Garden {
			if !c.resolver.Matches(line, v) {
				continue
			}
			for _, rule := range prepRules {
				if containsAny(line, rule.verbs) {
					out = append(out, newStep(prepType(rule.kind, v), lines.Prep(rule.kind, v)))
					break
				}
			}
		}
	}
	return out
}

func (c *Compiler) crack(r domain.Recipe, lower []string) []domain.CookingStep {
	if !r.HasPantry(domain.Eggs) {
		return nil
	}
	text := lines.DefaultCrack(domain.Eggs)
	if i := firstLineWith(lower, crackWords); i >= 0 {
		text = r.Instructions[i]
	}
	return []domain.CookingStep{newStep(domain.Crack(domain.Eggs), text)}
}

// addToPan puts aromatics in first, then any vegetable an add-verb line
// mentions, then proteins a cook-verb line mentions.
func (c *Compiler) addToPan(r domain.Recipe, lower []string) []domain.CookingStep {
	var out []domain.CookingStep
	for _, v := range r.Garden {
		if v.Aromatic() {
			out = append(out, vegetableToPan(v))
		}
	}

	for _, v := range r.Garden {
		if v.Aromatic() {
			continue
		}
		for _, line := range lower {
			if containsAny(line, addVerbs) && c.resolver.Matches(line, v) {
				out = append(out, vegetableToPan(v))
				break
			}
		}
	}

	for _, item := range r.Pantry {
		if item.Category() != domain.CategoryProtein {
			continue
		}
		name := strings.ToLower(item.DisplayName())
		for _, line := range lower {
			if strings.Contains(line, name) && containsAny(line, proteinVerbs) {
				out = append(out, newStep(
					domain.AddToPan(item.DisplayName(), item.Image()),
					lines.AddToPan(item.DisplayName()),
				))
				break
			}
		}
	}
	return out
}

func (c *Compiler) stir(r domain.Recipe, lower []string) []domain.CookingStep {
	i := firstLineWith(lower, stirWords)
	if i < 0 {
		return nil
	}
	return []domain.CookingStep{newStep(domain.Stir(), r.Instructions[i])}
}

func (c *Compiler) season(r domain.Recipe, _ []string) []domain.CookingStep {
	var items []domain.PantryItem
	for _, item := range r.Pantry {
		if item.Category() == domain.CategorySeasoning {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return []domain.CookingStep{newStep(domain.Season(items), lines.Season(items))}
}

func (c *Compiler) cook(r domain.Recipe, _ []string) []domain.CookingStep {
	secs := CookSeconds(r.Difficulty)
	return []domain.CookingStep{newStep(domain.Cook(secs), lines.Cook(secs))}
}

// assemble uses the recipe's last sentence verbatim.
// TODO: recipes with no instructions get no assemble step; revisit once
// recipe content carries structured step metadata.
func (c *Compiler) assemble(r domain.Recipe, _ []string) []domain.CookingStep {
	if len(r.Instructions) == 0 {
		return nil
	}
	last := r.Instructions[len(r.Instructions)-1]
	return []domain.CookingStep{newStep(domain.Assemble(last), last)}
}

// dedupKey identifies steps that must appear at most once. Steps that
// the phases build at most once have no key.
type dedupKey struct {
	kind domain.StepKind
	veg  domain.Vegetable
	name string
}

func keyOf(t domain.StepType) (dedupKey, bool) {
	switch {
	case t.Kind.IsPrep():
		return dedupKey{kind: t.Kind, veg: t.Vegetable}, true
	case t.Kind == domain.KindAddToPan:
		return dedupKey{kind: t.Kind, name: t.Name}, true
	default:
		return dedupKey{}, false
	}
}

// dedup keeps the first step for every key.
func dedup(steps []domain.CookingStep) []domain.CookingStep {
	seen := make(map[dedupKey]bool, len(steps))
	out := make([]domain.CookingStep, 0, len(steps))
	for _, s := range steps {
		if k, ok := keyOf(s.Type); ok {
			if seen[k] {
				continue
			}
			seen[k] = true
		}
		out = append(out, s)
	}
	return out
}

func newStep(t domain.StepType, instruction string) domain.CookingStep {
	return domain.CookingStep{
		Type:        t,
		Instruction: instruction,
		Flavor:      lines.Flavor(t.Kind),
	}
}

func vegetableToPan(v domain.Vegetable) domain.CookingStep {
	return newStep(domain.AddToPan(v.DisplayName(), v.Image()), lines.AddToPan(v.DisplayName()))
}

func prepType(kind domain.StepKind, v domain.Vegetable) domain.StepType {
	switch kind {
	case domain.KindWash:
		return domain.Wash(v)
	case domain.KindPeel:
		return domain.Peel(v)
	case domain.KindGrate:
		return domain.Grate(v)
	case domain.KindDice:
		return domain.Dice(v)
	case domain.KindSlice:
		return domain.Slice(v)
	default:
		return domain.Chop(v)
	}
}

func hasFat(r domain.Recipe) bool {
	for _, item := range r.Pantry {
		if item.Category() == domain.CategoryFat {
			return true
		}
	}
	return false
}

// firstLineWith returns the index of the first line containing any of
// words, or -1.
func firstLineWith(lower []string, words []string) int {
	for i, line := range lower {
		if containsAny(line, words) {
			return i
		}
	}
	return -1
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

var defaultCompiler = New()

// Compile compiles r with the built-in resolver.
func Compile(r domain.Recipe) []domain.CookingStep {
	return defaultCompiler.Compile(r)
}

// Trace reports per-phase activity for r with the built-in resolver.
func Trace(r domain.Recipe) []PhaseTrace {
	return defaultCompiler.Trace(r)
}
