package tag

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"recipehub/domain"
	"recipehub/entities"
)

type (
	TagRepository interface {
		GetTags(ctx context.Context) ([]TagWithCount, error)
		GetTagByID(ctx context.Context, id uuid.UUID) (*entities.Tag, error)
		GetTagsBySlugs(ctx context.Context, slugs []string) ([]entities.Tag, error)
		SeedTags(ctx context.Context, names []string) (int64, error)
	}

	TagWithCount struct {
		ID          uuid.UUID
		Name        string
		Slug        string
		RecipeCount int64
	}

	tagRepository struct {
		db *gorm.DB
	}
)

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetTags(ctx context.Context) ([]TagWithCount, error) {
	var tags []TagWithCount
	err := r.db.WithContext(ctx).
		Model(&entities.Tag{}).
		Select("tags.id, tags.name, tags.slug, COUNT(recipe_tags.recipe_id) AS recipe_count").
		Joins("LEFT JOIN recipe_tags ON recipe_tags.tag_id = tags.id").
		Group("tags.id, tags.name, tags.slug").
		Order("tags.name asc").
		Scan(&tags).Error
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	return tags, nil
}

func (r *tagRepository) GetTagByID(ctx context.Context, id uuid.UUID) (*entities.Tag, error) {
	var tag entities.Tag
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tag).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTagNotFound
		}
		return nil, fmt.Errorf("get tag: %w", err)
	}
	return &tag, nil
}

// GetTagsBySlugs silently skips slugs that match no tag.
func (r *tagRepository) GetTagsBySlugs(ctx context.Context, slugs []string) ([]entities.Tag, error) {
	if len(slugs) == 0 {
		return nil, nil
	}

	var tags []entities.Tag
	if err := r.db.WithContext(ctx).Where("slug IN ?", slugs).Order("name asc").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("get tags by slugs: %w", err)
	}
	return tags, nil
}

// SeedTags inserts the named tags, leaving existing ones untouched.
func (r *tagRepository) SeedTags(ctx context.Context, names []string) (int64, error) {
	if len(names) == 0 {
		return 0, nil
	}

	tags := make([]entities.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, entities.Tag{Name: name, Slug: slug.Make(name)})
	}

	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&tags)
	if res.Error != nil {
		return 0, fmt.Errorf("seed tags: %w", res.Error)
	}
	return res.RowsAffected, nil
}
