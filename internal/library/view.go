// Package library holds the client-side view of the story collection:
// fetched summaries decorated with presentation fields, filtered and
// sorted for display.
package library

import (
	"slices"

	"github.com/fjnwajei/story-reader-app/pkg/client"
)

// Genres is the fixed set cycled through when decorating summaries.
var Genres = []string{"Fantasy", "Adventure", "Sci-Fi"}

// GenreAll matches every genre when filtering.
const GenreAll = "All"

// Sort modes. Popular and Liked both order by likes descending; Recent
// orders by id descending. Anything else keeps filter order.
const (
	SortPopular = "popular"
	SortRecent  = "recent"
	SortLiked   = "liked"
)

// Status filter values. StatusAll passes everything, StatusRead keeps
// read stories, any other value keeps unread ones.
const (
	StatusAll  = "all"
	StatusRead = "read"
)

// DefaultDescription is the placeholder description shown on every card.
const DefaultDescription = "Click the title to read the full story."

// Summary is a story list entry decorated with presentation-only fields.
// Genre, likes, views and description are demo values computed from list
// position at fetch time; they have no backing in the store and are
// recomputed on every fetch. Read is toggled locally and never persisted.
type Summary struct {
	ID          uint
	Title       string
	Genre       string
	Likes       int
	Views       int
	Read        bool
	Description string
}

// Decorate turns fetched summaries into display summaries, assigning the
// demo fields by list position: genres cycle through Genres, likes and
// views grow linearly, read starts false.
func Decorate(refs []client.StorySummary) []Summary {
	summaries := make([]Summary, 0, len(refs))
	for idx, ref := range refs {
		summaries = append(summaries, Summary{
			ID:          ref.ID,
			Title:       ref.Title,
			Genre:       Genres[idx%len(Genres)],
			Likes:       100 + idx*10,
			Views:       200 + idx*20,
			Read:        false,
			Description: DefaultDescription,
		})
	}
	return summaries
}

// View is the state the rendered story list is a pure function of.
type View struct {
	Stories []Summary
	Genre   string
	Sort    string
	Status  string
}

// NewView returns a view with the default filter selection.
func NewView(stories []Summary) View {
	return View{
		Stories: stories,
		Genre:   GenreAll,
		Sort:    SortPopular,
		Status:  StatusAll,
	}
}

// Project returns the stories to display: filtered by genre and read
// status, then sorted per the selected mode. The view itself is never
// mutated; ties keep the order of the filtered set.
func (v View) Project() []Summary {
	filtered := make([]Summary, 0, len(v.Stories))
	for _, story := range v.Stories {
		if v.Genre != GenreAll && story.Genre != v.Genre {
			continue
		}
		if v.Status != StatusAll {
			if v.Status == StatusRead {
				if !story.Read {
					continue
				}
			} else if story.Read {
				continue
			}
		}
		filtered = append(filtered, story)
	}

	switch v.Sort {
	case SortPopular, SortLiked:
		slices.SortStableFunc(filtered, func(a, b Summary) int {
			return b.Likes - a.Likes
		})
	case SortRecent:
		slices.SortStableFunc(filtered, func(a, b Summary) int {
			return int(b.ID) - int(a.ID)
		})
	}

	return filtered
}
