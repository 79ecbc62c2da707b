package schemaorg

import "time"

//schemald:type
type Recipe struct {
	Name               string `jsonld:",required"`
	Description        string
	CookTime           time.Duration
	PrepTime           time.Duration
	TotalTime          time.Duration
	RecipeYield        string
	RecipeCategory     string
	RecipeCuisine      string
	Image              string
	Author             *Person
	Nutrition          *NutritionInformation
	AggregateRating    *AggregateRating
	RecipeIngredient   []string
	RecipeInstructions []string
}

//schemald:type
type NutritionInformation struct {
	Calories              string
	CarbohydrateContent   string
	CholesterolContent    string
	FatContent            string
	FiberContent          string
	ProteinContent        string
	SaturatedFatContent   string
	ServingSize           string
	SodiumContent         string
	SugarContent          string
	TransFatContent       string
	UnsaturatedFatContent string
}

//schemald:type
type HowTo struct {
	Name        string `jsonld:",required"`
	Description string
	Image       *ImageObject
	Step        []HowToStep `jsonld:",required"`
	TotalTime   time.Duration
	PrepTime    time.Duration
	Supply      []string
	Tool        []string
}

//schemald:type
type HowToStep struct {
	Text  string `jsonld:",required"`
	Name  string
	Image *ImageObject
	URL   string `jsonld:"url"`
}
