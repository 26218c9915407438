package domain

import "strings"

// Vegetable is a garden ingredient kind.
type Vegetable int

const (
	Tomato Vegetable = iota
	Onion
	Carrot
	Potato
	Lettuce
	Cucumber
	Broccoli
	RedBellPepper
	YellowBellPepper
	GreenBeans
	SweetPotato
	Zucchini
	Spinach
	Corn
	Pumpkin
	Garlic
)

type vegetableInfo struct {
	name     string
	image    string
	aromatic bool
}

var vegetables = map[Vegetable]vegetableInfo{
	Tomato:           {name: "Tomato", image: "veg_tomato"},
	Onion:            {name: "Onion", image: "veg_onion", aromatic: true},
	Carrot:           {name: "Carrot", image: "veg_carrot"},
	Potato:           {name: "Potato", image: "veg_potato"},
	Lettuce:          {name: "Lettuce", image: "veg_lettuce"},
	Cucumber:         {name: "Cucumber", image: "veg_cucumber"},
	Broccoli:         {name: "Broccoli", image: "veg_broccoli"},
	RedBellPepper:    {name: "Red Bell Pepper", image: "veg_pepper_red"},
	YellowBellPepper: {name: "Yellow Bell Pepper", image: "veg_pepper_yellow"},
	GreenBeans:       {name: "Green Beans", image: "veg_green_beans"},
	SweetPotato:      {name: "Sweet Potato", image: "veg_sweet_potato"},
	Zucchini:         {name: "Zucchini", image: "veg_zucchini"},
	Spinach:          {name: "Spinach", image: "veg_spinach"},
	Corn:             {name: "Corn", image: "veg_corn"},
	Pumpkin:          {name: "Pumpkin", image: "veg_pumpkin"},
	Garlic:           {name: "Garlic", image: "veg_garlic"},
}

// Vegetables returns every garden kind in declaration order.
func Vegetables() []Vegetable {
	out := make([]Vegetable, 0, len(vegetables))
	for v := Tomato; v <= Garlic; v++ {
		out = append(out, v)
	}
	return out
}

// DisplayName returns the player-facing name, e.g. "Sweet Potato".
func (v Vegetable) DisplayName() string {
	if info, ok := vegetables[v]; ok {
		return info.name
	}
	return "Unknown"
}

// String returns the display name.
func (v Vegetable) String() string { return v.DisplayName() }

// Image returns the asset reference used by the presentation layer.
func (v Vegetable) Image() string {
	return vegetables[v].image
}

// Aromatic reports whether the vegetable always goes into the pan first.
func (v Vegetable) Aromatic() bool {
	return vegetables[v].aromatic
}

// ParseVegetable resolves a display name or snake_case name
// ("sweet potato", "sweet_potato") to a Vegetable.
func ParseVegetable(name string) (Vegetable, bool) {
	key := normalizeName(name)
	for v, info := range vegetables {
		if normalizeName(info.name) == key {
			return v, true
		}
	}
	return 0, false
}

// PantryCategory groups pantry items by how the compiler treats them.
type PantryCategory int

const (
	CategoryOther PantryCategory = iota
	CategoryFat
	CategorySeasoning
	CategoryEgg
	CategoryProtein
)

// String returns a human-readable category.
func (c PantryCategory) String() string {
	switch c {
	case CategoryFat:
		return "fat"
	case CategorySeasoning:
		return "seasoning"
	case CategoryEgg:
		return "egg"
	case CategoryProtein:
		return "protein"
	default:
		return "other"
	}
}

// PantryItem is a store-bought ingredient kind.
type PantryItem int

const (
	Butter PantryItem = iota
	OliveOil
	VegetableOil
	Eggs
	Cheese
	Salt
	Pepper
	Cinnamon
	SoySauce
	Chicken
	GroundBeef
	Flour
	Milk
	Sugar
	Rice
	Pasta
	Bread
	Honey
)

type pantryInfo struct {
	name     string
	image    string
	category PantryCategory
}

var pantry = map[PantryItem]pantryInfo{
	Butter:       {name: "Butter", image: "pantry_butter", category: CategoryFat},
	OliveOil:     {name: "Olive Oil", image: "pantry_olive_oil", category: CategoryFat},
	VegetableOil: {name: "Vegetable Oil", image: "pantry_vegetable_oil", category: CategoryFat},
	Eggs:         {name: "Eggs", image: "pantry_eggs", category: CategoryEgg},
	Cheese:       {name: "Cheese", image: "pantry_cheese"},
	Salt:         {name: "Salt", image: "pantry_salt", category: CategorySeasoning},
	Pepper:       {name: "Pepper", image: "pantry_pepper", category: CategorySeasoning},
	Cinnamon:     {name: "Cinnamon", image: "pantry_cinnamon", category: CategorySeasoning},
	SoySauce:     {name: "Soy Sauce", image: "pantry_soy_sauce", category: CategorySeasoning},
	Chicken:      {name: "Chicken", image: "pantry_chicken", category: CategoryProtein},
	GroundBeef:   {name: "Ground Beef", image: "pantry_ground_beef", category: CategoryProtein},
	Flour:        {name: "Flour", image: "pantry_flour"},
	Milk:         {name: "Milk", image: "pantry_milk"},
	Sugar:        {name: "Sugar", image: "pantry_sugar"},
	Rice:         {name: "Rice", image: "pantry_rice"},
	Pasta:        {name: "Pasta", image: "pantry_pasta"},
	Bread:        {name: "Bread", image: "pantry_bread"},
	Honey:        {name: "Honey", image: "pantry_honey"},
}

// DisplayName returns the player-facing name, e.g. "Olive Oil".
func (p PantryItem) DisplayName() string {
	if info, ok := pantry[p]; ok {
		return info.name
	}
	return "Unknown"
}

// String returns the display name.
func (p PantryItem) String() string { return p.DisplayName() }

// Image returns the asset reference used by the presentation layer.
func (p PantryItem) Image() string {
	return pantry[p].image
}

// Category returns how the compiler classifies the item.
func (p PantryItem) Category() PantryCategory {
	return pantry[p].category
}

// ParsePantryItem resolves a display name or snake_case name to a PantryItem.
func ParsePantryItem(name string) (PantryItem, bool) {
	key := normalizeName(name)
	for p, info := range pantry {
		if normalizeName(info.name) == key {
			return p, true
		}
	}
	return 0, false
}

func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
