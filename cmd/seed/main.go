package main

import (
	"log"

	"github.com/pageza/homebar/backend/config"
	"github.com/pageza/homebar/backend/internal/database"
	"github.com/pageza/homebar/backend/internal/models"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	for _, recipe := range sampleRecipes {
		r := recipe
		var count int64
		db.Model(&models.Recipe{}).Where("name = ?", r.Name).Count(&count)
		if count > 0 {
			log.Printf("- Skipping recipe (already seeded): %s", r.Name)
			continue
		}
		if err := db.Create(&r).Error; err != nil {
			log.Printf("x Failed to add recipe %s: %v", r.Name, err)
			continue
		}
		log.Printf("+ Added recipe: %s", r.Name)
	}

	for _, item := range sampleInventory {
		i := item
		var count int64
		db.Model(&models.InventoryItem{}).Where("name = ?", i.Name).Count(&count)
		if count > 0 {
			log.Printf("- Skipping inventory (already seeded): %s", i.Name)
			continue
		}
		if err := db.Create(&i).Error; err != nil {
			log.Printf("x Failed to add inventory %s: %v", i.Name, err)
			continue
		}
		log.Printf("+ Added inventory: %s", i.Name)
	}

	log.Println("Seeding complete")
}

var sampleRecipes = []models.Recipe{
	{
		Name:            "Gin & Tonic",
		Description:     "The definitive highball: dry gin lengthened with tonic over plenty of ice.",
		Category:        "cocktail",
		GlassType:       "highball",
		Difficulty:      "easy",
		PreparationTime: 2,
		ABV:             10,
		Ingredients: models.IngredientList{
			{Name: "Gin", Quantity: 50, Unit: "ml"},
			{Name: "Tonic Water", Quantity: 150, Unit: "ml"},
			{Name: "Lime", Quantity: 1, Unit: "wedge", Optional: true},
		},
		Instructions: models.StringList{
			"Fill a highball glass with ice.",
			"Pour in the gin, then top with tonic water.",
			"Stir once and garnish with a lime wedge.",
		},
		Garnish: "Lime wedge",
		Moods:   models.StringList{"sparkling", "light"},
		Tags:    models.StringList{"classic", "refreshing"},
	},
	{
		Name:            "Old Fashioned",
		Description:     "Bourbon, sugar and bitters stirred over ice. Strong and slow.",
		Category:        "cocktail",
		GlassType:       "rocks",
		Difficulty:      "medium",
		PreparationTime: 5,
		ABV:             32,
		Ingredients: models.IngredientList{
			{Name: "Bourbon", Quantity: 60, Unit: "ml"},
			{Name: "Sugar", Quantity: 1, Unit: "cube"},
			{Name: "Angostura Bitters", Quantity: 2, Unit: "dash"},
			{Name: "Orange", Quantity: 1, Unit: "peel", Optional: true},
		},
		Instructions: models.StringList{
			"Muddle the sugar cube with the bitters and a splash of water.",
			"Add bourbon and a large ice cube.",
			"Stir until well chilled and express an orange peel over the top.",
		},
		Garnish: "Orange peel",
		Moods:   models.StringList{"strong"},
		Tags:    models.StringList{"classic", "stirred"},
	},
	{
		Name:            "Daiquiri",
		Description:     "Rum, lime and sugar in perfect balance, shaken hard and served up.",
		Category:        "cocktail",
		GlassType:       "coupe",
		Difficulty:      "easy",
		PreparationTime: 3,
		ABV:             20,
		Ingredients: models.IngredientList{
			{Name: "White Rum", Quantity: 60, Unit: "ml"},
			{Name: "Fresh Lime Juice", Quantity: 25, Unit: "ml"},
			{Name: "Simple Syrup", Quantity: 15, Unit: "ml"},
		},
		Instructions: models.StringList{
			"Shake all ingredients with ice until very cold.",
			"Double strain into a chilled coupe.",
		},
		Garnish: "Lime wheel",
		Moods:   models.StringList{"sour", "sweet"},
		Tags:    models.StringList{"classic", "shaken"},
	},
	{
		Name:            "Hot Toddy",
		Description:     "Warm whiskey with honey and lemon; the fireside cure-all.",
		Category:        "cocktail",
		GlassType:       "mug",
		Difficulty:      "easy",
		PreparationTime: 5,
		ABV:             12,
		Temperature:     "hot",
		Ingredients: models.IngredientList{
			{Name: "Whiskey", Quantity: 45, Unit: "ml"},
			{Name: "Honey", Quantity: 15, Unit: "ml"},
			{Name: "Fresh Lemon Juice", Quantity: 15, Unit: "ml"},
			{Name: "Cinnamon", Quantity: 1, Unit: "stick", Optional: true},
		},
		Instructions: models.StringList{
			"Stir honey and lemon juice into a mug of hot water.",
			"Add whiskey and stir.",
			"Drop in a cinnamon stick if you have one.",
		},
		Garnish: "Cinnamon stick",
		Moods:   models.StringList{"warm"},
		Tags:    models.StringList{"winter", "hot"},
	},
	{
		Name:            "Cosmopolitan",
		Description:     "Vodka, citrus and cranberry, shaken bright pink and served up.",
		Category:        "cocktail",
		GlassType:       "martini",
		Difficulty:      "medium",
		PreparationTime: 4,
		ABV:             22,
		Ingredients: models.IngredientList{
			{Name: "Vodka", Quantity: 45, Unit: "ml"},
			{Name: "Cointreau", Quantity: 15, Unit: "ml"},
			{Name: "Fresh Lime Juice", Quantity: 15, Unit: "ml"},
			{Name: "Cranberry Juice", Quantity: 30, Unit: "ml"},
		},
		Instructions: models.StringList{
			"Shake all ingredients with ice.",
			"Double strain into a chilled martini glass.",
		},
		Garnish: "Orange twist",
		Moods:   models.StringList{"sour", "strong"},
		Tags:    models.StringList{"classic", "shaken"},
	},
	{
		Name:            "Aperol Spritz",
		Description:     "Prosecco, Aperol and soda; low-proof and lazy-afternoon sparkling.",
		Category:        "cocktail",
		GlassType:       "wine",
		Difficulty:      "easy",
		PreparationTime: 2,
		ABV:             11,
		Ingredients: models.IngredientList{
			{Name: "Aperol", Quantity: 60, Unit: "ml"},
			{Name: "Prosecco", Quantity: 90, Unit: "ml"},
			{Name: "Soda Water", Quantity: 30, Unit: "ml"},
		},
		Instructions: models.StringList{
			"Build over ice in a large wine glass.",
			"Stir gently and garnish with an orange slice.",
		},
		Garnish: "Orange slice",
		Moods:   models.StringList{"sparkling", "light", "sweet"},
		Tags:    models.StringList{"aperitivo"},
	},
	{
		Name:            "Negroni",
		Description:     "Equal parts gin, Campari and sweet vermouth. Bitter and serious.",
		Category:        "cocktail",
		GlassType:       "rocks",
		Difficulty:      "easy",
		PreparationTime: 3,
		ABV:             24,
		Ingredients: models.IngredientList{
			{Name: "Gin", Quantity: 30, Unit: "ml"},
			{Name: "Campari", Quantity: 30, Unit: "ml"},
			{Name: "Sweet Vermouth", Quantity: 30, Unit: "ml"},
		},
		Instructions: models.StringList{
			"Stir all ingredients with ice.",
			"Strain over a large cube and garnish with an orange peel.",
		},
		Garnish: "Orange peel",
		Moods:   models.StringList{"strong"},
		Tags:    models.StringList{"classic", "bitter"},
	},
	{
		Name:            "Mulled Wine",
		Description:     "Red wine warmed with spices and citrus for cold evenings.",
		Category:        "wine",
		GlassType:       "mug",
		Difficulty:      "medium",
		PreparationTime: 15,
		ABV:             11,
		Temperature:     "hot",
		Ingredients: models.IngredientList{
			{Name: "Red Wine", Quantity: 750, Unit: "ml"},
			{Name: "Honey", Quantity: 45, Unit: "ml"},
			{Name: "Cinnamon", Quantity: 2, Unit: "stick"},
			{Name: "Orange", Quantity: 1, Unit: "whole"},
		},
		Instructions: models.StringList{
			"Combine everything in a pot over low heat.",
			"Warm gently for fifteen minutes without boiling.",
			"Ladle into mugs.",
		},
		Garnish: "Orange wheel",
		Moods:   models.StringList{"warm", "sweet"},
		Tags:    models.StringList{"winter", "batch"},
	},
}

var sampleInventory = []models.InventoryItem{
	{Name: "Tanqueray Gin", Category: models.CategorySpirits, Quantity: 1, Unit: "bottle", Brand: "Tanqueray"},
	{Name: "Vodka", Category: models.CategorySpirits, Quantity: 2, Unit: "bottle"},
	{Name: "White Rum", Category: models.CategorySpirits, Quantity: 1, Unit: "bottle"},
	{Name: "Bourbon", Category: models.CategoryWhiskey, Quantity: 1, Unit: "bottle"},
	{Name: "Yamazaki 12", Category: models.CategoryWhiskey, Quantity: 1, Unit: "bottle", Brand: "Suntory"},
	{Name: "Tonic Water", Category: models.CategoryMixers, Quantity: 6, Unit: "can"},
	{Name: "Soda Water", Category: models.CategoryMixers, Quantity: 6, Unit: "can"},
	{Name: "Cranberry Juice", Category: models.CategoryMixers, Quantity: 1, Unit: "carton"},
	{Name: "Fresh Lime", Category: models.CategoryFruits, Quantity: 8, Unit: "piece"},
	{Name: "Rioja Reserva", Category: models.CategoryWine, Quantity: 2, Unit: "bottle"},
	{Name: "Pilsner", Category: models.CategoryBeer, Quantity: 12, Unit: "bottle"},
	{Name: "Dassai 39", Category: models.CategorySake, Quantity: 1, Unit: "bottle"},
	{Name: "Fresh Mint", Category: models.CategoryHerbs, Quantity: 1, Unit: "bunch"},
}
