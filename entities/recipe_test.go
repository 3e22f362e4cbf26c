package entities

import (
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestRecipe_BeforeSaveBuildsSearchText(t *testing.T) {
	r := &Recipe{
		Title:       "Shakshuka",
		Description: "Eggs poached in tomato sauce",
		Ingredients: pq.StringArray{"eggs", "tomatoes"},
		Steps:       pq.StringArray{"simmer sauce", "crack eggs"},
		Tags:        []Tag{{Name: "Breakfast"}},
	}

	assert.NoError(t, r.BeforeSave(nil))
	assert.Equal(t, "Shakshuka Eggs poached in tomato sauce eggs tomatoes simmer sauce crack eggs Breakfast", r.SearchText)
}

func TestRefreshToken_IsExpired(t *testing.T) {
	now := time.Now()

	assert.True(t, RefreshToken{ExpiresAt: now.Add(-time.Second)}.IsExpired(now))
	assert.False(t, RefreshToken{ExpiresAt: now.Add(time.Hour)}.IsExpired(now))
}
