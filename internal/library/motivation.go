package library

import "math/rand"

// Fixed motivation content. Shown client-side only; the API never serves it.
var (
	DailyQuotes = []string{
		"Believe you can and you're halfway there.",
		"Every day is a new beginning.",
		"Success is not final, failure is not fatal: It is the courage to continue that counts.",
	}

	InspirationalStories = []string{
		"Once, a young athlete overcame all odds to win the race, teaching everyone that perseverance pays off.",
		"A small act of kindness changed a stranger's life forever, reminding us to always help others.",
	}

	Boosts = []string{
		"Take a deep breath and smile!",
		"Write down one thing you're grateful for.",
		"Do a quick stretch break!",
	}
)

func randomFrom(items []string) string {
	return items[rand.Intn(len(items))]
}

// RandomQuote picks a daily quote.
func RandomQuote() string { return randomFrom(DailyQuotes) }

// RandomStory picks an inspirational story.
func RandomStory() string { return randomFrom(InspirationalStories) }

// RandomBoost picks a boost of the day.
func RandomBoost() string { return randomFrom(Boosts) }
