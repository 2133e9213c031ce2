package view

import (
	"strings"

	"cinefront/internal/media"
)

// ProjectCard builds the card for a record. It returns false for records
// without a poster path; those are dropped rather than rendered empty.
func ProjectCard(record media.Record, imageBase string) (Card, bool) {
	if !record.HasPoster() {
		return Card{}, false
	}
	return newCard(record, imageBase), true
}

// ProjectCards projects records in order, skipping posterless ones.
func ProjectCards(records []media.Record, imageBase string) []Card {
	cards := make([]Card, 0, len(records))
	for _, record := range records {
		if card, ok := ProjectCard(record, imageBase); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// ProjectDetail builds the details view model. Unlike cards, a detail is
// built even without a poster.
func ProjectDetail(record media.Record, imageBase string) Detail {
	detail := Detail{
		Card:     newCard(record, imageBase),
		Overview: record.Overview,
	}
	if detail.Overview == "" {
		detail.Overview = NoOverview
	}

	if record.Kind == media.Series {
		detail.Duration = FormatSeasons(record.Seasons)
	} else {
		detail.Duration = FormatRuntime(record.Runtime)
	}
	return detail
}

func newCard(record media.Record, imageBase string) Card {
	card := Card{
		ID:     record.ID,
		Kind:   record.Kind,
		Title:  record.Title,
		Year:   FormatYear(record.Date),
		Rating: FormatRating(record.Rating),
	}
	if record.PosterPath != "" {
		card.PosterURL = strings.TrimSuffix(imageBase, "/") + record.PosterPath
	}
	if record.Kind == media.Series {
		card.Label = "TV Show"
	} else {
		card.Label = strings.ToUpper(record.Language)
	}
	return card
}
