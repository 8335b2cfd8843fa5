// Package seed inserts the built-in demo stories into an empty database.
package seed

import (
	"github.com/fjnwajei/story-reader-app/internal/models"

	"gorm.io/gorm"
)

// DemoStories are the stories a fresh library starts with.
var DemoStories = []models.Story{
	{
		Title:    "The Enchanted Forest",
		FullText: "Once upon a time, in a forest filled with magical creatures, a young girl named Lily discovered a hidden path that led to a world beyond her imagination...",
	},
	{
		Title:    "The Lost Treasure",
		FullText: "Captain Redbeard had searched the seven seas for the legendary lost treasure. One stormy night, his map revealed a clue that would change everything...",
	},
}

// Stories seeds the demo stories when the stories table is empty. A
// non-empty table leaves existing data untouched, so repeated startups
// never duplicate the demo rows.
func Stories(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Story{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}

		for _, item := range DemoStories {
			story := models.Story{
				Title:    item.Title,
				FullText: item.FullText,
			}
			if err := tx.Create(&story).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
