package migration

import (
	"fmt"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
	"recipehub/entities"
)

const searchIndexSQL = `CREATE INDEX IF NOT EXISTS idx_recipes_search_text ON recipes USING GIN (to_tsvector('english', search_text))`

func Migrate(db *gorm.DB) error {
	// uuid_generate_v4() backs every primary key default
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("create uuid-ossp extension: %w", err)
	}

	models := []any{
		&entities.User{},
		&entities.RefreshToken{},
		&entities.Tag{},
		&entities.Recipe{},
		&entities.RecipeBookmark{},
	}
	for _, model := range models {
		if err := db.AutoMigrate(model); err != nil {
			return fmt.Errorf("migrate %T: %w", model, err)
		}
	}

	if err := db.Exec(searchIndexSQL).Error; err != nil {
		return fmt.Errorf("create search index: %w", err)
	}

	log.Info("database migration complete")
	return nil
}
