package catalog

// foods is the full Nigerian food catalog, built once at package init.
var foods = buildAll()

func buildAll() []Entry {
	return []Entry{
		// Staples / Swallow
		BuildEntry("ng-eba", "Eba (Garri)", "Swallow", "1 wrap (300g)", 300, []string{"swallow"}),
		BuildEntry("ng-fufu", "Fufu", "Swallow", "1 wrap (300g)", 300, []string{"swallow"}),
		BuildEntry("ng-pounded-yam", "Pounded Yam", "Swallow", "1 wrap (300g)", 300, []string{"swallow"}),
		BuildEntry("ng-semo", "Semovita", "Swallow", "1 wrap (300g)", 300, []string{"swallow"}),
		BuildEntry("ng-amala", "Amala", "Swallow", "1 wrap (300g)", 300, []string{"swallow"}),

		// Rice / Grains
		BuildEntry("ng-jollof-rice", "Jollof Rice", "Rice", "1 cup (200g)", 200, []string{"rice"}),
		BuildEntry("ng-fried-rice", "Fried Rice", "Rice", "1 cup (200g)", 200, []string{"rice"}),
		BuildEntry("ng-white-rice", "White Rice", "Rice", "1 cup (200g)", 200, []string{"rice"}),
		BuildEntry("ng-coconut-rice", "Coconut Rice", "Rice", "1 cup (200g)", 200, []string{"rice"}),
		BuildEntry("ng-ofada-rice", "Ofada Rice", "Rice", "1 cup (200g)", 200, []string{"rice"}),

		// Beans / Legumes
		BuildEntry("ng-beans", "Boiled Beans", "Legume", "1 cup (200g)", 200, []string{"beans"}),
		BuildEntry("ng-ewa-agoyin", "Ewa Agoyin", "Legume", "1 cup (200g)", 200, []string{"beans"}),
		BuildEntry("ng-moi-moi", "Moi Moi", "Legume", "1 wrap (200g)", 200, []string{"beans"}),
		BuildEntry("ng-akara", "Akara", "Snack", "3 pieces (120g)", 120, []string{"beans"}),

		// Soups / Stews (1 ladle)
		BuildEntry("ng-egusi", "Egusi Soup", "Soup", "1 ladle (150g)", 150, []string{"soup"}),
		BuildEntry("ng-ogbono", "Ogbono Soup", "Soup", "1 ladle (150g)", 150, []string{"soup"}),
		BuildEntry("ng-okra", "Okra Soup", "Soup", "1 ladle (150g)", 150, []string{"soup"}),
		BuildEntry("ng-edikang-ikong", "Edikang Ikong", "Soup", "1 ladle (150g)", 150, []string{"soup"}),
		BuildEntry("ng-afang", "Afang Soup", "Soup", "1 ladle (150g)", 150, []string{"soup"}),
		BuildEntry("ng-banga", "Banga Soup", "Soup", "1 ladle (150g)", 150, []string{"soup"}),
		BuildEntry("ng-iro", "Iro/Ofada Stew", "Stew", "1 ladle (150g)", 150, []string{"stew"}),
		BuildEntry("ng-tomato-stew", "Tomato Stew", "Stew", "1 ladle (150g)", 150, []string{"stew"}),
		BuildEntry("ng-pepper-soup", "Pepper Soup", "Soup", "1 bowl (300g)", 300, []string{"soup"}),

		// Proteins (1 piece)
		BuildEntry("ng-chicken", "Chicken (piece)", "Protein", "1 piece (120g)", 120, []string{"protein"}),
		BuildEntry("ng-beef", "Beef (piece)", "Protein", "1 piece (100g)", 100, []string{"protein"}),
		BuildEntry("ng-fish", "Fish (piece)", "Protein", "1 piece (120g)", 120, []string{"protein"}),
		BuildEntry("ng-goat", "Goat Meat (piece)", "Protein", "1 piece (100g)", 100, []string{"protein"}),
		BuildEntry("ng-turkey", "Turkey (piece)", "Protein", "1 piece (120g)", 120, []string{"protein"}),
		BuildEntry("ng-egg", "Boiled Egg", "Protein", "1 egg (50g)", 50, []string{"protein"}),

		// Tubers / Plantain
		BuildEntry("ng-boiled-yam", "Boiled Yam", "Tubers", "1 slice (200g)", 200, []string{"yam"}),
		BuildEntry("ng-fried-yam", "Fried Yam", "Tubers", "1 slice (200g)", 200, []string{"yam"}),
		BuildEntry("ng-plantain-fried", "Fried Plantain", "Side", "1 serving (150g)", 150, []string{"plantain"}),
		BuildEntry("ng-plantain-boiled", "Boiled Plantain", "Side", "1 serving (200g)", 200, []string{"plantain"}),

		// Breakfast / Snacks
		BuildEntry("ng-bread", "Bread", "Snack", "2 slices (60g)", 60, []string{"bread"}),
		BuildEntry("ng-ogi", "Ogi (Pap)", "Drink", "1 cup (250g)", 250, []string{"pap"}),
		BuildEntry("ng-chin-chin", "Chin Chin", "Snack", "1 cup (120g)", 120, []string{"snack"}),
		BuildEntry("ng-puff-puff", "Puff Puff", "Snack", "3 pieces (120g)", 120, []string{"snack"}),
		BuildEntry("ng-boli", "Boli (Roasted Plantain)", "Snack", "1 piece (200g)", 200, []string{"plantain"}),

		// Drinks
		BuildEntry("ng-zobo", "Zobo", "Drink", "1 glass (300g)", 300, []string{"drink"}),
		BuildEntry("ng-kunu", "Kunu", "Drink", "1 glass (300g)", 300, []string{"drink"}),
	}
}
