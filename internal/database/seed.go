package database

import (
	"context"
	"fmt"
	"log"

	"familycookbook/internal/models"
	"familycookbook/internal/repository"
)

var seedRecipes = []models.Recipe{
	{
		Title:       "Slow-Simmered Sunday Sauce",
		Description: "Rich tomato sauce loaded with tender meatballs and Italian sausage. Perfect ladled over pasta for big family dinners.",
		CookTime:    "2 hrs",
		Servings:    "6-8",
		ImageURL:    "https://images.unsplash.com/photo-1543353071-10c8ba85a904?auto=format&fit=crop&w=1200&q=80",
		Ingredients: models.StringList{
			"2 tbsp olive oil",
			"1 yellow onion, diced",
			"3 cloves garlic, minced",
			"1 lb Italian sausage",
			"1 lb ground beef",
			"2 cans (28 oz) crushed tomatoes",
			"1 cup beef broth",
			"2 tbsp tomato paste",
			"1 tsp dried oregano",
			"1/2 tsp red pepper flakes",
			"Salt and black pepper to taste",
			"Fresh basil for serving",
		},
		Instructions: models.StringList{
			"Warm olive oil over medium heat and saute onion until translucent.",
			"Add garlic, sausage, and ground beef; cook until browned.",
			"Stir in tomatoes, broth, tomato paste, and seasonings.",
			"Simmer uncovered for 90 minutes, stirring occasionally.",
			"Season to taste and finish with fresh basil.",
		},
		Status: models.RecipeStatusApproved,
	},
	{
		Title:       "Skillet Herb Roast Chicken",
		Description: "One-pan roasted chicken with golden potatoes, carrots, and a garlicky herb butter drizzle.",
		CookTime:    "1 hr 15 mins",
		Servings:    "4",
		ImageURL:    "https://images.unsplash.com/photo-1512621776951-a57141f2eefd?auto=format&fit=crop&w=1200&q=80",
		Ingredients: models.StringList{
			"1 whole chicken (3 1/2 - 4 lbs)",
			"4 tbsp butter, softened",
			"4 cloves garlic, minced",
			"1 lemon, zested",
			"2 tsp fresh rosemary, chopped",
			"1 tsp fresh thyme leaves",
			"1 lb baby potatoes, halved",
			"3 carrots, cut into chunks",
			"1 tbsp olive oil",
			"Salt and freshly cracked pepper",
		},
		Instructions: models.StringList{
			"Preheat oven to 425 F (220 C). Pat chicken dry.",
			"Mix butter, garlic, lemon zest, rosemary, thyme, salt, and pepper.",
			"Rub herb butter under the skin and over the chicken.",
			"Toss potatoes and carrots with olive oil, salt, and pepper in a skillet.",
			"Place chicken on vegetables and roast 65 minutes, basting halfway.",
			"Rest 10 minutes before carving and serving.",
		},
		Status: models.RecipeStatusApproved,
	},
	{
		Title:       "Fresh Garden Pesto Pasta",
		Description: "Bright basil pesto tossed with al dente pasta, toasted pine nuts, and juicy cherry tomatoes.",
		CookTime:    "30 mins",
		Servings:    "4",
		ImageURL:    "https://images.unsplash.com/photo-1525755662778-989d0524087e?auto=format&fit=crop&w=1200&q=80",
		Ingredients: models.StringList{
			"12 oz linguine or spaghetti",
			"2 cups fresh basil leaves",
			"1/3 cup toasted pine nuts",
			"2 cloves garlic",
			"1/2 cup freshly grated Parmesan",
			"1/2 cup extra-virgin olive oil",
			"1 cup cherry tomatoes, halved",
			"Salt and pepper",
			"Squeeze of lemon juice",
		},
		Instructions: models.StringList{
			"Cook pasta in salted water until al dente; reserve 1/2 cup pasta water.",
			"Blend basil, pine nuts, garlic, and Parmesan while drizzling in olive oil.",
			"Season pesto with salt, pepper, and lemon juice.",
			"Toss cooked pasta with pesto, loosening with reserved water as needed.",
			"Fold in cherry tomatoes and serve immediately.",
		},
		Status: models.RecipeStatusApproved,
	},
}

var seedStories = []models.FamilyStory{
	{
		Title:       "Grandma's Kitchen, 1987",
		Description: "Grandma walks through the Sunday sauce the way her mother taught her.",
		VideoURL:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
		Status:      models.StoryStatusPublished,
	},
	{
		Title:       "The Lake House Summers",
		Description: "Everyone's favorite stories from thirty years of July reunions.",
		VideoURL:    "https://www.youtube.com/embed/ScMzIvxBSi4",
		Status:      models.StoryStatusPublished,
	},
}

// Seed inserts the starter rows once, only when the tables are empty.
func Seed(ctx context.Context, repo *repository.Repository) error {
	count, err := repo.Recipe.Count(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при подсчёте рецептов: %w", err)
	}

	if count == 0 {
		for i := range seedRecipes {
			recipe := seedRecipes[i]
			if err := repo.Recipe.Create(ctx, &recipe); err != nil {
				return fmt.Errorf("ошибка при добавлении стартового рецепта: %w", err)
			}
		}
		log.Println("Seeded recipes table with starter data.")
	}

	count, err = repo.Story.Count(ctx)
	if err != nil {
		return fmt.Errorf("ошибка при подсчёте историй: %w", err)
	}

	if count == 0 {
		for i := range seedStories {
			story := seedStories[i]
			if err := repo.Story.Create(ctx, &story); err != nil {
				return fmt.Errorf("ошибка при добавлении стартовой истории: %w", err)
			}
		}
		log.Println("Seeded family_stories table with starter data.")
	}

	return nil
}
