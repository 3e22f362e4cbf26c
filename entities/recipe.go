package entities

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
	"strings"
	"time"
)

type Recipe struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string         `gorm:"type:varchar(200);not null" json:"title"`
	Description     string         `gorm:"type:text" json:"description"`
	Ingredients     pq.StringArray `gorm:"type:text[]" json:"ingredients"`
	Steps           pq.StringArray `gorm:"type:text[]" json:"steps"`
	PrepTimeMinutes int            `gorm:"not null;default:0" json:"prep_time_minutes"`
	ImageURL        string         `json:"image_url,omitempty"`
	Slug            string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"slug"`
	SearchText      string         `gorm:"type:text" json:"-"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Tags []Tag `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"tags"`
	Timestamp
}

// RecipeBookmark is the only record of a bookmark; both "my bookmarks" and
// "bookmarked by" are read from it.
type RecipeBookmark struct {
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"recipe_id"`
	CreatedAt time.Time `gorm:"type:timestamp;not null;autoCreateTime" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// BeforeSave keeps the full-text column in step with the searchable fields.
func (r *Recipe) BeforeSave(tx *gorm.DB) error {
	r.SearchText = r.buildSearchText()
	return nil
}

func (r *Recipe) buildSearchText() string {
	parts := make([]string, 0, 2+len(r.Ingredients)+len(r.Steps)+len(r.Tags))
	parts = append(parts, r.Title, r.Description)
	parts = append(parts, r.Ingredients...)
	parts = append(parts, r.Steps...)
	for _, tag := range r.Tags {
		parts = append(parts, tag.Name)
	}
	return strings.Join(parts, " ")
}
