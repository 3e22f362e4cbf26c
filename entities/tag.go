package entities

import "github.com/google/uuid"

type Tag struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
	Slug string    `gorm:"type:varchar(120);uniqueIndex;not null" json:"slug"`

	Recipes []Recipe `gorm:"many2many:recipe_tags;constraint:OnDelete:CASCADE" json:"recipes,omitempty"`
	Timestamp
}
