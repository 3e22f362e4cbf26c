package domain

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"time"
)

const (
	DefaultPageSize   = 8
	MaxPageSize       = 50
	MaxPage           = 10000
	DefaultRecentSize = 6
	MaxRecentSize     = 20

	SortNewest       = "newest"
	SortTitleAsc     = "title_asc"
	SortTitleDesc    = "title_desc"
	SortPrepTimeAsc  = "prep_time_asc"
	SortPrepTimeDesc = "prep_time_desc"
)

var (
	MessageSuccessGetRecipes       = "recipes retrieved successfully"
	MessageSuccessSearchRecipes    = "recipes matching search retrieved successfully"
	MessageSuccessGetRecipeDetail  = "recipe retrieved successfully"
	MessageSuccessGetRecentRecipes = "recent recipes retrieved successfully"
	MessageSuccessGetMyRecipes     = "user recipes retrieved successfully"
	MessageSuccessCreateRecipe     = "recipe created successfully"
	MessageSuccessDeleteRecipe     = "recipe deleted successfully"
	MessageSuccessGetBookmarks     = "bookmarked recipes retrieved successfully"
	MessageSuccessBookmarkRecipe   = "recipe bookmarked successfully"
	MessageSuccessRemoveBookmark   = "recipe unbookmarked successfully"
	MessageSuccessClearBookmarks   = "all bookmarked recipes cleared successfully"
	MessageSuccessGenerateRecipe   = "AI recipe generated successfully"

	MessageFailedGetRecipes       = "failed to get recipes"
	MessageFailedGetRecipeDetail  = "failed to get recipe"
	MessageFailedGetRecentRecipes = "failed to get recent recipes"
	MessageFailedGetMyRecipes     = "failed to get user recipes"
	MessageFailedCreateRecipe     = "failed to create recipe"
	MessageFailedDeleteRecipe     = "failed to delete recipe"
	MessageFailedGetBookmarks     = "failed to get bookmarked recipes"
	MessageFailedBookmarkRecipe   = "failed to bookmark recipe"
	MessageFailedRemoveBookmark   = "failed to unbookmark recipe"
	MessageFailedClearBookmarks   = "failed to clear bookmarked recipes"
	MessageFailedGenerateRecipe   = "failed to generate recipe"

	ErrRecipeNotFound           = errors.New("slug does not match any recipe")
	ErrUnauthorizedRecipeAccess = errors.New("only the creator can modify this recipe")
	ErrImageRequired            = errors.New("image is required")
	ErrInvalidImageFormat       = errors.New("invalid image format, allowed: png, jpeg, webp")
	ErrImageTooLarge            = errors.New("image exceeds maximum upload size")
	ErrImageUpload              = errors.New("failed to upload image")
	ErrGeminiAPIFailed          = errors.New("gemini API processing failed")
	ErrGeneratorDisabled        = errors.New("recipe generation is not configured")
)

// sortAliases maps the short sort keys older clients send.
var sortAliases = map[string]string{
	"prep_asc":  SortPrepTimeAsc,
	"prep_desc": SortPrepTimeDesc,
}

type (
	RecipeListRequest struct {
		Page   int      `query:"page" validate:"omitempty,min=1,max=10000"`
		Limit  int      `query:"limit" validate:"omitempty,min=1,max=50"`
		Tags   []string `query:"-"`
		Search string   `query:"search" validate:"omitempty,max=200"`
		Sort   string   `query:"sort" validate:"omitempty,oneof=newest title_asc title_desc prep_time_asc prep_time_desc prep_asc prep_desc"`
	}

	CreateRecipeRequest struct {
		Title           string                `form:"title" validate:"required,min=2,max=100"`
		Description     string                `form:"description" validate:"required,min=10,max=500"`
		Ingredients     []string              `form:"ingredients" validate:"required,min=1,max=50,dive,min=2,max=100"`
		Steps           []string              `form:"steps" validate:"required,min=1,max=100,dive,min=2,max=1000"`
		PreparationTime int                   `form:"preparationTime" validate:"omitempty,min=1,max=1440"`
		Tags            []string              `form:"tags" validate:"max=20,dive,min=1,max=120"`
		Image           *multipart.FileHeader `form:"-"`
	}

	GenerateRecipeRequest struct {
		Prompt string `json:"prompt" validate:"required,min=1,max=2000"`
	}

	Creator struct {
		ID          string `json:"id"`
		DisplayName string `json:"displayName"`
		Email       string `json:"email,omitempty"`
	}

	Recipe struct {
		ID              string    `json:"id"`
		Title           string    `json:"title"`
		Slug            string    `json:"slug"`
		Description     string    `json:"description"`
		ImageURL        string    `json:"imageUrl"`
		PreparationTime int       `json:"preparationTime"`
		Tags            []Tag     `json:"tags"`
		Creator         *Creator  `json:"creator,omitempty"`
		CreatedAt       time.Time `json:"createdAt"`
		IsBookmarked    bool      `json:"isBookmarked"`
	}

	RecipeDetail struct {
		Recipe
		Ingredients   []string `json:"ingredients"`
		Steps         []string `json:"steps"`
		BookmarkCount int64    `json:"bookmarkCount"`
	}

	RecipeListResponse struct {
		Recipes    []Recipe   `json:"recipes"`
		Pagination Pagination `json:"pagination"`
	}

	// GeneratedRecipe is the model output passed through without local validation.
	GeneratedRecipe = json.RawMessage
)

// Normalize fills defaults for a list request.
func (r *RecipeListRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Page > MaxPage {
		r.Page = MaxPage
	}
	if r.Limit < 1 {
		r.Limit = DefaultPageSize
	}
	if r.Limit > MaxPageSize {
		r.Limit = MaxPageSize
	}
	if alias, ok := sortAliases[r.Sort]; ok {
		r.Sort = alias
	}
	if r.Sort == "" {
		r.Sort = SortNewest
	}
}

func (r RecipeListRequest) Offset() int {
	return (r.Page - 1) * r.Limit
}
