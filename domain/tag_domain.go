package domain

import "errors"

var (
	MessageSuccessGetTags      = "success get tags"
	MessageSuccessGetTagDetail = "success get tag detail"
	MessageFailedGetTags       = "failed to get tags"
	MessageFailedGetTagDetail  = "failed to get tag detail"

	ErrTagNotFound = errors.New("tag not found")
)

// DefaultTags are inserted by the seed command.
var DefaultTags = []string{
	"Breakfast", "Lunch", "Dinner", "Dessert", "Snack", "Vegetarian",
	"Vegan", "Gluten Free", "Quick", "Healthy", "Soup", "Baking",
}

type (
	Tag struct {
		ID          string `json:"id"`
		Name        string `json:"name"`
		Slug        string `json:"slug"`
		RecipeCount int64  `json:"recipeCount"`
	}

	TagDetail struct {
		Tag
		Recipes []Recipe `json:"recipes"`
	}
)
