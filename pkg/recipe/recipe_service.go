package recipe

import (
	"context"
	"errors"
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"recipehub/domain"
	"recipehub/entities"
	"recipehub/internal/utils/storage"
	"recipehub/pkg/tag"
	"strings"
)

const imageFolder = "recipes"

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, req domain.RecipeListRequest, viewerID string) (domain.RecipeListResponse, error)
		GetRecipeBySlug(ctx context.Context, slug string, viewerID string) (domain.RecipeDetail, error)
		GetRecentRecipes(ctx context.Context, limit int, viewerID string) ([]domain.Recipe, error)
		GetMyRecipes(ctx context.Context, page, limit int, userID string) (domain.RecipeListResponse, error)
		GetRecipesByTag(ctx context.Context, tagID uuid.UUID, viewerID string) ([]domain.Recipe, error)
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, slug string, userID string) error

		GetBookmarkedRecipes(ctx context.Context, page, limit int, userID string) (domain.RecipeListResponse, error)
		BookmarkRecipe(ctx context.Context, slug string, userID string) error
		RemoveBookmark(ctx context.Context, slug string, userID string) error
		ClearBookmarks(ctx context.Context, userID string) (int64, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		tagRepository    tag.TagRepository
		storage          storage.Storage
		maxUploadSize    int64
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	tagRepository tag.TagRepository,
	storage storage.Storage,
	maxUploadSize int64,
) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		tagRepository:    tagRepository,
		storage:          storage,
		maxUploadSize:    maxUploadSize,
	}
}

func (s *recipeService) GetRecipes(ctx context.Context, req domain.RecipeListRequest, viewerID string) (domain.RecipeListResponse, error) {
	req.Normalize()

	filter := RecipeFilter{
		Search: strings.TrimSpace(req.Search),
		Sort:   req.Sort,
		Offset: req.Offset(),
		Limit:  req.Limit,
	}

	if len(req.Tags) > 0 {
		tags, err := s.tagRepository.GetTagsBySlugs(ctx, req.Tags)
		if err != nil {
			return domain.RecipeListResponse{}, err
		}
		// none of the requested tags exist, so nothing can match
		if len(tags) == 0 {
			return emptyList(req.Page, req.Limit), nil
		}
		for _, t := range tags {
			filter.TagIDs = append(filter.TagIDs, t.ID)
		}
	}

	recipes, total, err := s.recipeRepository.GetRecipes(ctx, filter)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	items, err := s.toRecipes(ctx, recipes, viewerID)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	return domain.RecipeListResponse{
		Recipes:    items,
		Pagination: domain.NewPagination(req.Page, req.Limit, total),
	}, nil
}

func (s *recipeService) GetRecipeBySlug(ctx context.Context, slug string, viewerID string) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetRecipeDetailBySlug(ctx, slug)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	count, err := s.recipeRepository.CountBookmarks(ctx, recipe.ID)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	detail := toRecipeDetail(recipe, count)
	if viewer, ok := parseViewer(viewerID); ok {
		marked, err := s.recipeRepository.GetBookmarkedIDs(ctx, viewer, []uuid.UUID{recipe.ID})
		if err != nil {
			return domain.RecipeDetail{}, err
		}
		detail.IsBookmarked = marked[recipe.ID]
	}
	return detail, nil
}

func (s *recipeService) GetRecentRecipes(ctx context.Context, limit int, viewerID string) ([]domain.Recipe, error) {
	if limit < 1 {
		limit = domain.DefaultRecentSize
	}
	if limit > domain.MaxRecentSize {
		limit = domain.MaxRecentSize
	}

	recipes, err := s.recipeRepository.GetRecentRecipes(ctx, limit)
	if err != nil {
		return nil, err
	}
	return s.toRecipes(ctx, recipes, viewerID)
}

func (s *recipeService) GetMyRecipes(ctx context.Context, page, limit int, userID string) (domain.RecipeListResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeListResponse{}, domain.ErrParseUUID
	}

	req := domain.RecipeListRequest{Page: page, Limit: limit}
	req.Normalize()

	recipes, total, err := s.recipeRepository.GetRecipes(ctx, RecipeFilter{
		UserID: uid,
		Sort:   domain.SortNewest,
		Offset: req.Offset(),
		Limit:  req.Limit,
	})
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	items, err := s.toRecipes(ctx, recipes, userID)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}
	return domain.RecipeListResponse{
		Recipes:    items,
		Pagination: domain.NewPagination(req.Page, req.Limit, total),
	}, nil
}

func (s *recipeService) GetRecipesByTag(ctx context.Context, tagID uuid.UUID, viewerID string) ([]domain.Recipe, error) {
	recipes, _, err := s.recipeRepository.GetRecipes(ctx, RecipeFilter{
		TagIDs: []uuid.UUID{tagID},
		Sort:   domain.SortNewest,
	})
	if err != nil {
		return nil, err
	}
	return s.toRecipes(ctx, recipes, viewerID)
}

// CreateRecipe uploads the image before touching the database. When the
// database write fails the uploaded object is removed again.
func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest, userID string) (domain.RecipeDetail, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeDetail{}, domain.ErrParseUUID
	}
	if req.Image == nil {
		return domain.RecipeDetail{}, domain.ErrImageRequired
	}
	if s.maxUploadSize > 0 && req.Image.Size > s.maxUploadSize {
		return domain.RecipeDetail{}, domain.ErrImageTooLarge
	}

	tags, err := s.tagRepository.GetTagsBySlugs(ctx, normalizeSlugs(req.Tags))
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	recipeSlug, err := s.uniqueSlug(ctx, req.Title)
	if err != nil {
		return domain.RecipeDetail{}, err
	}

	key, err := s.storage.UploadFile(ctx, recipeSlug, req.Image, imageFolder, storage.AllowImage...)
	if err != nil {
		if errors.Is(err, storage.ErrFileTypeNotAllowed) {
			return domain.RecipeDetail{}, domain.ErrInvalidImageFormat
		}
		log.Errorf("upload recipe image: %v", err)
		return domain.RecipeDetail{}, domain.ErrImageUpload
	}

	recipe := &entities.Recipe{
		UserID:          uid,
		Title:           strings.TrimSpace(req.Title),
		Description:     strings.TrimSpace(req.Description),
		Ingredients:     trimAll(req.Ingredients),
		Steps:           trimAll(req.Steps),
		PrepTimeMinutes: req.PreparationTime,
		ImageURL:        s.storage.GetPublicLinkKey(key),
		Slug:            recipeSlug,
		Tags:            tags,
	}

	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		if delErr := s.storage.DeleteFile(ctx, key); delErr != nil {
			log.Warnf("remove orphaned image %s: %v", key, delErr)
		}
		return domain.RecipeDetail{}, err
	}

	created, err := s.recipeRepository.GetRecipeDetailBySlug(ctx, recipe.Slug)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	return toRecipeDetail(created, 0), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, slug string, userID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}

	recipe, err := s.recipeRepository.FindRecipeBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if recipe.UserID != uid {
		return domain.ErrUnauthorizedRecipeAccess
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipe.ID, uid); err != nil {
		return err
	}

	if key := s.storage.GetObjectKeyFromLink(recipe.ImageURL); key != "" {
		if err := s.storage.DeleteFile(ctx, key); err != nil {
			log.Warnf("remove image of deleted recipe %s: %v", recipe.Slug, err)
		}
	}
	return nil
}

func (s *recipeService) GetBookmarkedRecipes(ctx context.Context, page, limit int, userID string) (domain.RecipeListResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeListResponse{}, domain.ErrParseUUID
	}

	req := domain.RecipeListRequest{Page: page, Limit: limit}
	req.Normalize()

	recipes, total, err := s.recipeRepository.GetBookmarkedRecipes(ctx, uid, req.Offset(), req.Limit)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	items := make([]domain.Recipe, 0, len(recipes))
	for i := range recipes {
		item := toRecipe(&recipes[i])
		item.IsBookmarked = true
		items = append(items, item)
	}
	return domain.RecipeListResponse{
		Recipes:    items,
		Pagination: domain.NewPagination(req.Page, req.Limit, total),
	}, nil
}

func (s *recipeService) BookmarkRecipe(ctx context.Context, slug string, userID string) error {
	uid, recipe, err := s.bookmarkTarget(ctx, slug, userID)
	if err != nil {
		return err
	}
	return s.recipeRepository.BookmarkRecipe(ctx, uid, recipe.ID)
}

func (s *recipeService) RemoveBookmark(ctx context.Context, slug string, userID string) error {
	uid, recipe, err := s.bookmarkTarget(ctx, slug, userID)
	if err != nil {
		return err
	}
	return s.recipeRepository.RemoveBookmark(ctx, uid, recipe.ID)
}

func (s *recipeService) ClearBookmarks(ctx context.Context, userID string) (int64, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return 0, domain.ErrParseUUID
	}
	return s.recipeRepository.ClearBookmarks(ctx, uid)
}

func (s *recipeService) bookmarkTarget(ctx context.Context, slug string, userID string) (uuid.UUID, *entities.Recipe, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, nil, domain.ErrParseUUID
	}
	recipe, err := s.recipeRepository.FindRecipeBySlug(ctx, slug)
	if err != nil {
		return uuid.Nil, nil, err
	}
	return uid, recipe, nil
}

func (s *recipeService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "recipe"
	}

	exists, err := s.recipeRepository.SlugExists(ctx, base)
	if err != nil {
		return "", err
	}
	if !exists {
		return base, nil
	}
	return fmt.Sprintf("%s-%s", base, uuid.NewString()[:8]), nil
}

// toRecipes maps list rows and flags the ones the viewer bookmarked.
func (s *recipeService) toRecipes(ctx context.Context, recipes []entities.Recipe, viewerID string) ([]domain.Recipe, error) {
	items := make([]domain.Recipe, 0, len(recipes))
	ids := make([]uuid.UUID, 0, len(recipes))
	for i := range recipes {
		items = append(items, toRecipe(&recipes[i]))
		ids = append(ids, recipes[i].ID)
	}

	viewer, ok := parseViewer(viewerID)
	if !ok || len(ids) == 0 {
		return items, nil
	}

	marked, err := s.recipeRepository.GetBookmarkedIDs(ctx, viewer, ids)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].IsBookmarked = marked[ids[i]]
	}
	return items, nil
}

func parseViewer(viewerID string) (uuid.UUID, bool) {
	if viewerID == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(viewerID)
	return id, err == nil
}

func emptyList(page, limit int) domain.RecipeListResponse {
	return domain.RecipeListResponse{
		Recipes:    []domain.Recipe{},
		Pagination: domain.NewPagination(page, limit, 0),
	}
}

func normalizeSlugs(values []string) []string {
	slugs := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if s := slug.Make(part); s != "" {
				slugs = append(slugs, s)
			}
		}
	}
	return slugs
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func toRecipe(r *entities.Recipe) domain.Recipe {
	tags := make([]domain.Tag, 0, len(r.Tags))
	for _, t := range r.Tags {
		tags = append(tags, domain.Tag{ID: t.ID.String(), Name: t.Name, Slug: t.Slug})
	}

	item := domain.Recipe{
		ID:              r.ID.String(),
		Title:           r.Title,
		Slug:            r.Slug,
		Description:     r.Description,
		ImageURL:        r.ImageURL,
		PreparationTime: r.PrepTimeMinutes,
		Tags:            tags,
		CreatedAt:       r.CreatedAt,
	}
	if r.User != nil {
		item.Creator = &domain.Creator{ID: r.User.ID.String(), DisplayName: r.User.DisplayName}
	}
	return item
}

func toRecipeDetail(r *entities.Recipe, bookmarkCount int64) domain.RecipeDetail {
	detail := domain.RecipeDetail{
		Recipe:        toRecipe(r),
		Ingredients:   append([]string{}, r.Ingredients...),
		Steps:         append([]string{}, r.Steps...),
		BookmarkCount: bookmarkCount,
	}
	if r.User != nil {
		detail.Creator.Email = r.User.Email
	}
	return detail
}
