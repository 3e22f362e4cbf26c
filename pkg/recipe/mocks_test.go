package recipe

import (
	"context"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"mime/multipart"
	"recipehub/entities"
	"recipehub/pkg/tag"
)

type mockRecipeRepository struct {
	mock.Mock
}

func (m *mockRecipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return m.Called(ctx, recipe).Error(0)
}

func (m *mockRecipeRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *mockRecipeRepository) FindRecipeBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	args := m.Called(ctx, slug)
	r, _ := args.Get(0).(*entities.Recipe)
	return r, args.Error(1)
}

func (m *mockRecipeRepository) GetRecipeDetailBySlug(ctx context.Context, slug string) (*entities.Recipe, error) {
	args := m.Called(ctx, slug)
	r, _ := args.Get(0).(*entities.Recipe)
	return r, args.Error(1)
}

func (m *mockRecipeRepository) GetRecipes(ctx context.Context, filter RecipeFilter) ([]entities.Recipe, int64, error) {
	args := m.Called(ctx, filter)
	r, _ := args.Get(0).([]entities.Recipe)
	return r, args.Get(1).(int64), args.Error(2)
}

func (m *mockRecipeRepository) GetRecentRecipes(ctx context.Context, limit int) ([]entities.Recipe, error) {
	args := m.Called(ctx, limit)
	r, _ := args.Get(0).([]entities.Recipe)
	return r, args.Error(1)
}

func (m *mockRecipeRepository) DeleteRecipe(ctx context.Context, recipeID, userID uuid.UUID) error {
	return m.Called(ctx, recipeID, userID).Error(0)
}

func (m *mockRecipeRepository) BookmarkRecipe(ctx context.Context, userID, recipeID uuid.UUID) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *mockRecipeRepository) RemoveBookmark(ctx context.Context, userID, recipeID uuid.UUID) error {
	return m.Called(ctx, userID, recipeID).Error(0)
}

func (m *mockRecipeRepository) ClearBookmarks(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRecipeRepository) GetBookmarkedRecipes(ctx context.Context, userID uuid.UUID, offset, limit int) ([]entities.Recipe, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	r, _ := args.Get(0).([]entities.Recipe)
	return r, args.Get(1).(int64), args.Error(2)
}

func (m *mockRecipeRepository) GetBookmarkedIDs(ctx context.Context, userID uuid.UUID, recipeIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	args := m.Called(ctx, userID, recipeIDs)
	r, _ := args.Get(0).(map[uuid.UUID]bool)
	return r, args.Error(1)
}

func (m *mockRecipeRepository) CountBookmarks(ctx context.Context, recipeID uuid.UUID) (int64, error) {
	args := m.Called(ctx, recipeID)
	return args.Get(0).(int64), args.Error(1)
}

type mockTagRepository struct {
	mock.Mock
}

func (m *mockTagRepository) GetTags(ctx context.Context) ([]tag.TagWithCount, error) {
	args := m.Called(ctx)
	r, _ := args.Get(0).([]tag.TagWithCount)
	return r, args.Error(1)
}

func (m *mockTagRepository) GetTagByID(ctx context.Context, id uuid.UUID) (*entities.Tag, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*entities.Tag)
	return r, args.Error(1)
}

func (m *mockTagRepository) GetTagsBySlugs(ctx context.Context, slugs []string) ([]entities.Tag, error) {
	args := m.Called(ctx, slugs)
	r, _ := args.Get(0).([]entities.Tag)
	return r, args.Error(1)
}

func (m *mockTagRepository) SeedTags(ctx context.Context, names []string) (int64, error) {
	args := m.Called(ctx, names)
	return args.Get(0).(int64), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) UploadFile(ctx context.Context, fileName string, file *multipart.FileHeader, folder string, allowTypes ...string) (string, error) {
	args := m.Called(ctx, fileName, file, folder)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) DeleteFile(ctx context.Context, objectKey string) error {
	return m.Called(ctx, objectKey).Error(0)
}

func (m *mockStorage) GetPublicLinkKey(objectKey string) string {
	return "https://cdn.test/" + objectKey
}

func (m *mockStorage) GetObjectKeyFromLink(link string) string {
	const base = "https://cdn.test/"
	if len(link) > len(base) && link[:len(base)] == base {
		return link[len(base):]
	}
	return ""
}
