package domain

import "testing"

func TestStepConstructors(t *testing.T) {
	tests := []struct {
		step StepType
		kind StepKind
		want string
	}{
		{HeatPan(), KindHeatPan, "heat_pan"},
		{AddFat(Butter), KindAddFat, "add_fat(Butter)"},
		{Wash(Lettuce), KindWash, "wash(Lettuce)"},
		{Peel(Carrot), KindPeel, "peel(Carrot)"},
		{Grate(Zucchini), KindGrate, "grate(Zucchini)"},
		{Dice(Onion), KindDice, "dice(Onion)"},
		{Slice(Cucumber), KindSlice, "slice(Cucumber)"},
		{Chop(Tomato), KindChop, "chop(Tomato)"},
		{Crack(Eggs), KindCrack, "crack(Eggs)"},
		{AddToPan("Onion", "veg_onion"), KindAddToPan, "add_to_pan(Onion)"},
		{Stir(), KindStir, "stir"},
		{Season([]PantryItem{Salt, Pepper}), KindSeason, "season(Salt, Pepper)"},
		{Cook(8), KindCook, "cook(8s)"},
		{Assemble("Serve it."), KindAssemble, "assemble"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if tt.step.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", tt.step.Kind, tt.kind)
			}
			if got := tt.step.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSeasonCopiesItems(t *testing.T) {
	items := []PantryItem{Salt}
	st := Season(items)
	items[0] = Cinnamon
	if st.Items[0] != Salt {
		t.Fatalf("Season shares the caller's slice: %v", st.Items)
	}
}
