package handlers

import (
	"context"
	"encoding/json"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"io"
	"net/http"
	"recipehub/domain"
	"recipehub/internal/utils"
	"testing"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) Register(ctx context.Context, req domain.RegisterRequest) (domain.AuthResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AuthResponse), args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, req domain.LoginRequest) (domain.AuthResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.AuthResponse), args.Error(1)
}

func (m *mockUserService) RefreshToken(ctx context.Context, req domain.RefreshTokenRequest) (domain.TokenResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.TokenResponse), args.Error(1)
}

func (m *mockUserService) CreateUser(ctx context.Context, req domain.RegisterRequest) (domain.UserResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.UserResponse), args.Error(1)
}

func (m *mockUserService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.UserResponse), args.Error(1)
}

func (m *mockUserService) GetUserByEmail(ctx context.Context, email string) (domain.UserResponse, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.UserResponse), args.Error(1)
}

func (m *mockUserService) Me(ctx context.Context, userID string) (domain.UserResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.UserResponse), args.Error(1)
}

func (m *mockUserService) SweepExpiredTokens(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockRecipeService struct{ mock.Mock }

func (m *mockRecipeService) GetRecipes(ctx context.Context, req domain.RecipeListRequest, viewerID string) (domain.RecipeListResponse, error) {
	args := m.Called(ctx, req, viewerID)
	return args.Get(0).(domain.RecipeListResponse), args.Error(1)
}

func (m *mockRecipeService) GetRecipeBySlug(ctx context.Context, slug string, viewerID string) (domain.RecipeDetail, error) {
	args := m.Called(ctx, slug, viewerID)
	return args.Get(0).(domain.RecipeDetail), args.Error(1)
}

func (m *mockRecipeService) GetRecentRecipes(ctx context.Context, limit int, viewerID string) ([]domain.Recipe, error) {
	args := m.Called(ctx, limit, viewerID)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *mockRecipeService) GetMyRecipes(ctx context.Context, page, limit int, userID string) (domain.RecipeListResponse, error) {
	args := m.Called(ctx, page, limit, userID)
	return args.Get(0).(domain.RecipeListResponse), args.Error(1)
}

func (m *mockRecipeService) GetRecipesByTag(ctx context.Context, tagID uuid.UUID, viewerID string) ([]domain.Recipe, error) {
	args := m.Called(ctx, tagID, viewerID)
	return args.Get(0).([]domain.Recipe), args.Error(1)
}

func (m *mockRecipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetail, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.RecipeDetail), args.Error(1)
}

func (m *mockRecipeService) DeleteRecipe(ctx context.Context, slug string, userID string) error {
	return m.Called(ctx, slug, userID).Error(0)
}

func (m *mockRecipeService) GetBookmarkedRecipes(ctx context.Context, page, limit int, userID string) (domain.RecipeListResponse, error) {
	args := m.Called(ctx, page, limit, userID)
	return args.Get(0).(domain.RecipeListResponse), args.Error(1)
}

func (m *mockRecipeService) BookmarkRecipe(ctx context.Context, slug string, userID string) error {
	return m.Called(ctx, slug, userID).Error(0)
}

func (m *mockRecipeService) RemoveBookmark(ctx context.Context, slug string, userID string) error {
	return m.Called(ctx, slug, userID).Error(0)
}

func (m *mockRecipeService) ClearBookmarks(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type mockGeneratorService struct{ mock.Mock }

func (m *mockGeneratorService) GenerateRecipe(ctx context.Context, prompt string) (domain.GeneratedRecipe, error) {
	args := m.Called(ctx, prompt)
	out, _ := args.Get(0).(domain.GeneratedRecipe)
	return out, args.Error(1)
}

type mockTagService struct{ mock.Mock }

func (m *mockTagService) GetTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Tag), args.Error(1)
}

func (m *mockTagService) GetTagDetail(ctx context.Context, tagID string, viewerID string) (domain.TagDetail, error) {
	args := m.Called(ctx, tagID, viewerID)
	return args.Get(0).(domain.TagDetail), args.Error(1)
}

func (m *mockTagService) SeedDefaultTags(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func testValidator() *validator.Validate {
	return utils.NewValidator()
}

// asUser stands in for the auth middleware.
func asUser(userID string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(domain.LocalsUserID, userID)
		return c.Next()
	}
}

func readEnvelope(t *testing.T, resp *http.Response) (domain.Response, json.RawMessage) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var envelope struct {
		Status  string          `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return domain.Response{Status: envelope.Status, Message: envelope.Message}, envelope.Data
}
