package recipe

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"recipehub/domain"
	"recipehub/entities"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		SlugExists(ctx context.Context, slug string) (bool, error)
		FindRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error)
		GetRecipeDetailBySlug(ctx context.Context, slug string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter RecipeFilter) ([]entities.Recipe, int64, error)
		GetRecentRecipes(ctx context.Context, limit int) ([]entities.Recipe, error)
		DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error

		BookmarkRecipe(ctx context.Context, userID, recipeID uuid.UUID) error
		RemoveBookmark(ctx context.Context, userID, recipeID uuid.UUID) error
		ClearBookmarks(ctx context.Context, userID uuid.UUID) (int64, error)
		GetBookmarkedRecipes(ctx context.Context, userID uuid.UUID, offset, limit int) ([]entities.Recipe, int64, error)
		GetBookmarkedIDs(ctx context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error)
		CountBookmarks(ctx context.Context, recipeID uuid.UUID) (int64, error)
	}

	// RecipeFilter narrows a recipe listing. A zero Limit returns every match.
	RecipeFilter struct {
		UserID uuid.UUID
		TagIDs []uuid.UUID
		Search string
		Sort   string
		Offset int
		Limit  int
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

var sortOrders = map[string][]string{
	domain.SortNewest:       {"recipes.created_at desc", "recipes.id desc"},
	domain.SortTitleAsc:     {"recipes.title asc", "recipes.id asc"},
	domain.SortTitleDesc:    {"recipes.title desc", "recipes.id desc"},
	domain.SortPrepTimeAsc:  {"recipes.prep_time_minutes asc", "recipes.id asc"},
	domain.SortPrepTimeDesc: {"recipes.prep_time_minutes desc", "recipes.id desc"},
}

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (f RecipeFilter) where(db *gorm.DB) *gorm.DB {
	if f.UserID != uuid.Nil {
		db = db.Where("recipes.user_id = ?", f.UserID)
	}
	if len(f.TagIDs) > 0 {
		sub := db.Session(&gorm.Session{NewDB: true}).
			Table("recipe_tags").
			Select("recipe_id").
			Where("tag_id IN ?", f.TagIDs)
		db = db.Where("recipes.id IN (?)", sub)
	}
	if f.Search != "" {
		db = db.Where("to_tsvector('english', recipes.search_text) @@ plainto_tsquery('english', ?)", f.Search)
	}
	return db
}

func (f RecipeFilter) order(db *gorm.DB) *gorm.DB {
	orders, ok := sortOrders[f.Sort]
	if !ok {
		orders = sortOrders[domain.SortNewest]
	}
	for _, o := range orders {
		db = db.Order(o)
	}
	return db
}

func withListRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name asc") }).
		Preload("User")
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// tags already exist; only the recipe_tags links are written
		if err := tx.Omit("Tags.*").Create(recipe).Error; err != nil {
			return fmt.Errorf("create recipe: %w", err)
		}
		return nil
	})
}

func (r *recipeRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check slug: %w", err)
	}
	return count > 0, nil
}

func (r *recipeRepository) FindRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("find recipe: %w", err)
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipeDetailBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Scopes(withListRelations).Where("slug = ?", slug).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("get recipe detail: %w", err)
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter RecipeFilter) ([]entities.Recipe, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Scopes(filter.where).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}
	if count == 0 {
		return []entities.Recipe{}, 0, nil
	}

	q := r.db.WithContext(ctx).Scopes(filter.where, filter.order, withListRelations)
	if filter.Limit > 0 {
		q = q.Offset(filter.Offset).Limit(filter.Limit)
	}

	var recipes []entities.Recipe
	if err := q.Find(&recipes).Error; err != nil {
		return nil, 0, fmt.Errorf("get recipes: %w", err)
	}
	return recipes, count, nil
}

func (r *recipeRepository) GetRecentRecipes(ctx context.Context, limit int) ([]entities.Recipe, error) {
	var recipes []entities.Recipe
	err := r.db.WithContext(ctx).
		Scopes(RecipeFilter{Sort: domain.SortNewest}.order, withListRelations).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("get recent recipes: %w", err)
	}
	return recipes, nil
}

// DeleteRecipe removes the recipe with its tag links and bookmarks in one
// transaction. Nothing changes unless userID owns the recipe.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM recipe_tags WHERE recipe_id = ?", recipeID).Error; err != nil {
			return fmt.Errorf("delete recipe tags: %w", err)
		}
		if err := tx.Where("recipe_id = ?", recipeID).Delete(&entities.RecipeBookmark{}).Error; err != nil {
			return fmt.Errorf("delete recipe bookmarks: %w", err)
		}
		res := tx.Where("id = ? AND user_id = ?", recipeID, userID).Delete(&entities.Recipe{})
		if res.Error != nil {
			return fmt.Errorf("delete recipe: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrUnauthorizedRecipeAccess
		}
		return nil
	})
}

func (r *recipeRepository) BookmarkRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	bookmark := &entities.RecipeBookmark{UserID: userID, RecipeID: recipeID}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(bookmark).Error; err != nil {
		return fmt.Errorf("bookmark recipe: %w", err)
	}
	return nil
}

func (r *recipeRepository) RemoveBookmark(ctx context.Context, userID, recipeID uuid.UUID) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.RecipeBookmark{}).Error
	if err != nil {
		return fmt.Errorf("remove bookmark: %w", err)
	}
	return nil
}

func (r *recipeRepository) ClearBookmarks(ctx context.Context, userID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entities.RecipeBookmark{})
	if res.Error != nil {
		return 0, fmt.Errorf("clear bookmarks: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *recipeRepository) GetBookmarkedRecipes(ctx context.Context, userID uuid.UUID, offset, limit int) ([]entities.Recipe, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.RecipeBookmark{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, 0, fmt.Errorf("count bookmarks: %w", err)
	}
	if count == 0 {
		return []entities.Recipe{}, 0, nil
	}

	var recipes []entities.Recipe
	err := r.db.WithContext(ctx).
		Scopes(withListRelations).
		Joins("JOIN recipe_bookmarks ON recipe_bookmarks.recipe_id = recipes.id AND recipe_bookmarks.user_id = ?", userID).
		Order("recipe_bookmarks.created_at desc").
		Order("recipes.id desc").
		Offset(offset).
		Limit(limit).
		Find(&recipes).Error
	if err != nil {
		return nil, 0, fmt.Errorf("get bookmarked recipes: %w", err)
	}
	return recipes, count, nil
}

func (r *recipeRepository) GetBookmarkedIDs(ctx context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	marked := make(map[uuid.UUID]bool, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return marked, nil
	}

	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&entities.RecipeBookmark{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("get bookmarked ids: %w", err)
	}
	for _, id := range ids {
		marked[id] = true
	}
	return marked, nil
}

func (r *recipeRepository) CountBookmarks(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.RecipeBookmark{}).Where("recipe_id = ?", recipeID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count bookmarks: %w", err)
	}
	return count, nil
}
