package compare_test

import (
	"time"

	"github.com/reoring/schemald"
	"github.com/reoring/schemald/schemaorg"
)

func recipe() *schemaorg.Recipe {
	return &schemaorg.Recipe{
		Name:               "Pancakes",
		Description:        "Fluffy pancakes",
		CookTime:           20 * time.Minute,
		PrepTime:           90 * time.Minute,
		Author:             &schemaorg.Person{Name: "Ann", URL: "https://example.com/ann"},
		RecipeIngredient:   []string{"flour", "milk", "eggs", "sugar"},
		RecipeInstructions: []string{"mix", "rest", "fry"},
	}
}

// jsonRecipe is the hand-mapped struct a caller would marshal without schemald.
type jsonRecipe struct {
	Context            string      `json:"@context"`
	Type               string      `json:"@type"`
	Name               string      `json:"name"`
	Description        string      `json:"description,omitempty"`
	CookTime           string      `json:"cookTime,omitempty"`
	PrepTime           string      `json:"prepTime,omitempty"`
	Author             *jsonPerson `json:"author,omitempty"`
	RecipeIngredient   []string    `json:"recipeIngredient,omitempty"`
	RecipeInstructions []string    `json:"recipeInstructions,omitempty"`
}

type jsonPerson struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

func toJSON(r *schemaorg.Recipe) *jsonRecipe {
	out := &jsonRecipe{
		Context:            schemald.VocabularyContext,
		Type:               "Recipe",
		Name:               r.Name,
		Description:        r.Description,
		RecipeIngredient:   r.RecipeIngredient,
		RecipeInstructions: r.RecipeInstructions,
	}
	if r.CookTime != 0 {
		out.CookTime = schemald.FormatDuration(r.CookTime)
	}
	if r.PrepTime != 0 {
		out.PrepTime = schemald.FormatDuration(r.PrepTime)
	}
	if r.Author != nil {
		out.Author = &jsonPerson{Type: "Person", Name: r.Author.Name, URL: r.Author.URL}
	}
	return out
}
