package compiler

import (
	"reflect"
	"testing"

	"github.com/hammamikhairi/sproutchef/internal/domain"
)

func scrambledEggs() domain.Recipe {
	return domain.Recipe{
		ID:     "veggie-scramble",
		Title:  "Veggie Scramble",
		Garden: []domain.Vegetable{domain.Tomato, domain.Onion},
		Pantry: []domain.PantryItem{domain.Eggs, domain.Butter, domain.Cheese, domain.Salt, domain.Pepper},
		Instructions: []string{
			"Crack the eggs into a bowl and whisk them with a fork.",
			"Chop the tomato and the onion into small pieces.",
			"Melt the butter in a pan and cook the eggs gently.",
			"Slide onto a plate — bon appetit!",
		},
		Difficulty:      domain.Medium,
		CookTimeMinutes: 10,
	}
}

func kinds(steps []domain.CookingStep) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Type.String()
	}
	return out
}

func TestCompileScrambleScenario(t *testing.T) {
	steps := Compile(scrambledEggs())

	want := []string{
		"heat_pan",
		"add_fat(Butter)",
		"chop(Tomato)",
		"chop(Onion)",
		"crack(Eggs)",
		"add_to_pan(Onion)",
		"season(Salt, Pepper)",
		"cook(8s)",
		"assemble",
	}
	if got := kinds(steps); !reflect.DeepEqual(got, want) {
		t.Fatalf("steps:\n got  %v\n want %v", got, want)
	}

	if got := steps[1].Instruction; got != "Melt the butter in a pan and cook the eggs gently." {
		t.Errorf("add fat instruction = %q", got)
	}
	if got := steps[4].Instruction; got != "Crack the eggs into a bowl and whisk them with a fork." {
		t.Errorf("crack instruction = %q", got)
	}
	last := steps[len(steps)-1]
	if last.Type.Text != "Slide onto a plate — bon appetit!" || last.Instruction != last.Type.Text {
		t.Errorf("assemble = %+v", last)
	}
	if steps[5].Type.Image != domain.Onion.Image() {
		t.Errorf("add to pan image = %q, want %q", steps[5].Type.Image, domain.Onion.Image())
	}
	for i, s := range steps {
		if s.Flavor == "" {
			t.Errorf("step %d (%s) has no flavor text", i, s.Type)
		}
	}
}

func TestCompileCookSecondsByDifficulty(t *testing.T) {
	tests := []struct {
		difficulty domain.Difficulty
		want       int
	}{
		{domain.Easy, 5},
		{domain.Medium, 8},
		{domain.Hard, 12},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			r := scrambledEggs()
			r.Difficulty = tt.difficulty
			var found bool
			for _, s := range Compile(r) {
				if s.Type.Kind == domain.KindCook {
					found = true
					if s.Type.Seconds != tt.want {
						t.Fatalf("cook seconds = %d, want %d", s.Type.Seconds, tt.want)
					}
				}
			}
			if !found {
				t.Fatal("expected a cook step")
			}
		})
	}
}

func TestCompileNoCookSuppression(t *testing.T) {
	r := domain.Recipe{
		ID:     "rainbow-salad",
		Garden: []domain.Vegetable{domain.Lettuce, domain.Onion, domain.Cucumber},
		Pantry: []domain.PantryItem{domain.OliveOil, domain.Eggs, domain.Salt},
		Instructions: []string{
			"Wash the lettuce and tear it into a bowl.",
			"Slice the cucumber and add it to the bowl.",
			"Toss with olive oil, then heat nothing and mix well.",
			"Serve right away.",
		},
		CookTimeMinutes: 5,
	}

	steps := Compile(r)
	for _, s := range steps {
		switch s.Type.Kind {
		case domain.KindHeatPan, domain.KindAddFat, domain.KindAddToPan, domain.KindStir, domain.KindCook:
			t.Fatalf("no-cook recipe produced %s", s.Type)
		}
	}

	want := []string{"wash(Lettuce)", "slice(Cucumber)", "crack(Eggs)", "season(Salt)", "assemble"}
	if got := kinds(steps); !reflect.DeepEqual(got, want) {
		t.Fatalf("steps:\n got  %v\n want %v", got, want)
	}
}

func TestCompilePrepPriority(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"Wash and chop the carrot.", "wash(Carrot)"},
		{"Peel and slice the carrot.", "peel(Carrot)"},
		{"Shred the carrot, then dice it.", "grate(Carrot)"},
		{"Dice and slice the carrot.", "dice(Carrot)"},
		{"Slice the carrot and cut the ends.", "slice(Carrot)"},
		{"Tear the carrot tops.", "chop(Carrot)"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			r := domain.Recipe{
				Garden:       []domain.Vegetable{domain.Carrot},
				Instructions: []string{tt.line, "Enjoy."},
			}
			steps := Compile(r)
			if len(steps) == 0 || steps[0].Type.String() != tt.want {
				t.Fatalf("first step = %v, want %s", kinds(steps), tt.want)
			}
		})
	}
}

func TestCompileDedup(t *testing.T) {
	r := domain.Recipe{
		Garden: []domain.Vegetable{domain.Onion, domain.Carrot},
		Instructions: []string{
			"Chop the carrot.",
			"Cut the carrot again, smaller.",
			"Wash the carrot.",
			"Add the carrot to the pan.",
			"Add the onion and the carrot and stir.",
			"Serve.",
		},
		CookTimeMinutes: 15,
	}

	steps := Compile(r)

	seen := make(map[string]bool)
	for _, s := range steps {
		if !s.Type.Kind.IsPrep() && s.Type.Kind != domain.KindAddToPan {
			continue
		}
		k := s.Type.String()
		if seen[k] {
			t.Fatalf("duplicate step %s in %v", k, kinds(steps))
		}
		seen[k] = true
	}

	for _, k := range []string{"chop(Carrot)", "wash(Carrot)", "add_to_pan(Onion)", "add_to_pan(Carrot)"} {
		if !seen[k] {
			t.Errorf("expected %s in %v", k, kinds(steps))
		}
	}
}

func TestDedupKeepsFirst(t *testing.T) {
	steps := []domain.CookingStep{
		{Type: domain.AddToPan("Onion", "veg_onion"), Instruction: "first"},
		{Type: domain.Chop(domain.Onion)},
		{Type: domain.AddToPan("Onion", "other"), Instruction: "second"},
		{Type: domain.Wash(domain.Onion)},
		{Type: domain.Chop(domain.Onion)},
		{Type: domain.Stir()},
		{Type: domain.Stir()},
	}

	got := dedup(steps)
	want := []string{"add_to_pan(Onion)", "chop(Onion)", "wash(Onion)", "stir", "stir"}
	if !reflect.DeepEqual(kinds(got), want) {
		t.Fatalf("got %v, want %v", kinds(got), want)
	}
	if got[0].Instruction != "first" {
		t.Fatalf("expected first occurrence kept, got %q", got[0].Instruction)
	}
}

func TestCompileAddToPan(t *testing.T) {
	r := domain.Recipe{
		Garden: []domain.Vegetable{domain.Broccoli, domain.Onion, domain.Corn},
		Pantry: []domain.PantryItem{domain.Chicken, domain.GroundBeef, domain.VegetableOil},
		Instructions: []string{
			"Brown the chicken in the hot oil.",
			"Add the florets and fry them.",
			"Put the ground beef back in the fridge.",
			"Corn goes on the side.",
		},
		Difficulty:      domain.Hard,
		CookTimeMinutes: 20,
	}

	var got []string
	for _, s := range Compile(r) {
		if s.Type.Kind == domain.KindAddToPan {
			got = append(got, s.Type.Name)
		}
	}
	want := []string{"Onion", "Broccoli", "Chicken"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("add to pan = %v, want %v", got, want)
	}
}

func TestCompileAddFatPriority(t *testing.T) {
	r := domain.Recipe{
		Pantry:          []domain.PantryItem{domain.VegetableOil, domain.OliveOil},
		Instructions:    []string{"Serve."},
		CookTimeMinutes: 10,
	}
	steps := Compile(r)
	if len(steps) < 2 || steps[1].Type.Kind != domain.KindAddFat {
		t.Fatalf("expected heat pan then add fat, got %v", kinds(steps))
	}
	if steps[1].Type.Item != domain.OliveOil {
		t.Fatalf("add fat item = %s, want Olive Oil", steps[1].Type.Item)
	}
	if steps[1].Instruction == "" {
		t.Fatal("expected default add-fat sentence")
	}
}

func TestCompileHeatPanFromVerbOnly(t *testing.T) {
	r := domain.Recipe{
		Instructions:    []string{"Boil the water.", "Serve."},
		CookTimeMinutes: 10,
	}
	steps := Compile(r)
	if len(steps) == 0 || steps[0].Type.Kind != domain.KindHeatPan {
		t.Fatalf("expected heat pan first, got %v", kinds(steps))
	}
	for _, s := range steps {
		if s.Type.Kind == domain.KindAddFat {
			t.Fatal("add fat without a fat pantry item")
		}
	}
}

func TestCompileDegenerate(t *testing.T) {
	t.Run("empty recipe", func(t *testing.T) {
		if steps := Compile(domain.Recipe{}); len(steps) != 0 {
			t.Fatalf("expected no steps, got %v", kinds(steps))
		}
	})

	t.Run("no instructions", func(t *testing.T) {
		r := domain.Recipe{
			Pantry:          []domain.PantryItem{domain.Eggs, domain.Cinnamon},
			CookTimeMinutes: 3,
		}
		want := []string{"crack(Eggs)", "season(Cinnamon)"}
		if got := kinds(Compile(r)); !reflect.DeepEqual(got, want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	})
}

func TestCompileDeterministic(t *testing.T) {
	r := scrambledEggs()
	first := Compile(r)
	second := Compile(r)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("compilation is not deterministic")
	}

	first[0].Instruction = "mutated"
	first[6].Type.Items[0] = domain.Sugar
	third := Compile(r)
	if !reflect.DeepEqual(second, third) {
		t.Fatal("mutating one compilation leaked into another")
	}
}

func TestCompileCanonicalOrder(t *testing.T) {
	recipes := []domain.Recipe{
		scrambledEggs(),
		{
			Garden: []domain.Vegetable{domain.Carrot, domain.Onion, domain.Potato},
			Pantry: []domain.PantryItem{domain.Salt, domain.Butter, domain.Eggs, domain.Chicken},
			Instructions: []string{
				"Serve with a smile and stir once more.",
				"Add the carrot, toss, and cook the chicken.",
				"Peel the potato and dice the carrot.",
				"Wash the onion.",
			},
			Difficulty:      domain.Hard,
			CookTimeMinutes: 30,
		},
		{
			Garden:          []domain.Vegetable{domain.Spinach},
			Pantry:          []domain.PantryItem{domain.SoySauce, domain.OliveOil},
			Instructions:    []string{"Mix the spinach.", "Wash the spinach.", "Heat and enjoy."},
			CookTimeMinutes: 8,
		},
	}

	for i, r := range recipes {
		steps := Compile(r)
		for j := 1; j < len(steps); j++ {
			prev, cur := steps[j-1].Type.Kind, steps[j].Type.Kind
			if cur.Phase() < prev.Phase() {
				t.Fatalf("recipe %d: %s after %s breaks phase order: %v", i, cur, prev, kinds(steps))
			}
		}
	}
}

func TestTrace(t *testing.T) {
	r := scrambledEggs()
	r.CookTimeMinutes = 2

	trace := Trace(r)
	if len(trace) != 9 {
		t.Fatalf("expected 9 phases, got %d", len(trace))
	}

	suppressed := map[string]bool{}
	for _, p := range trace {
		if p.Suppressed {
			suppressed[p.Name] = true
		}
	}
	want := map[string]bool{"heat_pan": true, "add_fat": true, "add_to_pan": true, "stir": true, "cook": true}
	if !reflect.DeepEqual(suppressed, want) {
		t.Fatalf("suppressed = %v, want %v", suppressed, want)
	}
}
