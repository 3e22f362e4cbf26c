package tag

import (
	"context"
	"github.com/google/uuid"
	"recipehub/domain"
)

type (
	// RecipeLister supplies the recipes shown on a tag page.
	RecipeLister interface {
		GetRecipesByTag(ctx context.Context, tagID uuid.UUID, viewerID string) ([]domain.Recipe, error)
	}

	TagService interface {
		GetTags(ctx context.Context) ([]domain.Tag, error)
		GetTagDetail(ctx context.Context, tagID string, viewerID string) (domain.TagDetail, error)
		SeedDefaultTags(ctx context.Context) (int64, error)
	}

	tagService struct {
		tagRepository TagRepository
		recipes       RecipeLister
	}
)

func NewTagService(tagRepository TagRepository, recipes RecipeLister) TagService {
	return &tagService{
		tagRepository: tagRepository,
		recipes:       recipes,
	}
}

func (s *tagService) GetTags(ctx context.Context) ([]domain.Tag, error) {
	rows, err := s.tagRepository.GetTags(ctx)
	if err != nil {
		return nil, err
	}

	tags := make([]domain.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, domain.Tag{
			ID:          row.ID.String(),
			Name:        row.Name,
			Slug:        row.Slug,
			RecipeCount: row.RecipeCount,
		})
	}
	return tags, nil
}

func (s *tagService) GetTagDetail(ctx context.Context, tagID string, viewerID string) (domain.TagDetail, error) {
	id, err := uuid.Parse(tagID)
	if err != nil {
		return domain.TagDetail{}, domain.ErrParseUUID
	}

	tag, err := s.tagRepository.GetTagByID(ctx, id)
	if err != nil {
		return domain.TagDetail{}, err
	}

	recipes, err := s.recipes.GetRecipesByTag(ctx, id, viewerID)
	if err != nil {
		return domain.TagDetail{}, err
	}

	return domain.TagDetail{
		Tag: domain.Tag{
			ID:          tag.ID.String(),
			Name:        tag.Name,
			Slug:        tag.Slug,
			RecipeCount: int64(len(recipes)),
		},
		Recipes: recipes,
	}, nil
}

func (s *tagService) SeedDefaultTags(ctx context.Context) (int64, error) {
	return s.tagRepository.SeedTags(ctx, domain.DefaultTags)
}
