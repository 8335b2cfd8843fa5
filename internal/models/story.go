// Package models contains data structures for the application's domain models.
package models

// Story represents a story in the library. Both fields are required; the
// store never persists a row with an empty title or body.
type Story struct {
	ID       uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Title    string `gorm:"not null" json:"title"`
	FullText string `gorm:"type:text;not null" json:"full_text"`
}

// StorySummary is the list projection of a Story: id and title only. Full
// text is withheld from list views and fetched separately by id.
type StorySummary struct {
	ID    uint   `gorm:"column:id" json:"id"`
	Title string `gorm:"column:title" json:"title"`
}
