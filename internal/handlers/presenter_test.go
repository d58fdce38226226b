package handlers

import (
	"testing"
	"time"

	"gigbook/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestFormatTime(t *testing.T) {
	ts := time.Date(2026, 7, 1, 19, 30, 5, 0, time.UTC)
	assert.Equal(t, "2026-07-01 19:30:05", formatTime(ts))
}

func TestVenueViewPartitionsShows(t *testing.T) {
	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)
	artist := models.Artist{
		ID:        uuid.New(),
		Name:      "Guns N Petals",
		ImageLink: "https://example.com/petals.jpg",
	}
	venue := &models.Venue{
		ID:     uuid.New(),
		Name:   "The Musical Hop",
		City:   "San Francisco",
		State:  "CA",
		Genres: datatypes.NewJSONSlice([]string{"Jazz", "Folk"}),
		Shows: []models.Show{
			{Artist: artist, ArtistID: artist.ID, StartTime: now.Add(-24 * time.Hour)},
			{Artist: artist, ArtistID: artist.ID, StartTime: now.Add(24 * time.Hour)},
			{Artist: artist, ArtistID: artist.ID, StartTime: now.Add(48 * time.Hour)},
		},
	}

	view := venueView(venue, now)

	assert.Equal(t, "The Musical Hop", view["name"])
	assert.Equal(t, []string{"Jazz", "Folk"}, view["genres"])
	assert.Equal(t, 1, view["past_shows_count"])
	assert.Equal(t, 2, view["upcoming_shows_count"])

	past := view["past_shows"].([]gin.H)
	require.Len(t, past, 1)
	assert.Equal(t, artist.ID, past[0]["artist_id"])
	assert.Equal(t, "Guns N Petals", past[0]["artist_name"])
	assert.Equal(t, "https://example.com/petals.jpg", past[0]["artist_image_link"])
	assert.Equal(t, formatTime(now.Add(-24*time.Hour)), past[0]["start_time"])
}

func TestArtistViewUsesVenueCounterpart(t *testing.T) {
	now := time.Date(2026, 6, 15, 20, 0, 0, 0, time.UTC)
	venue := models.Venue{
		ID:        uuid.New(),
		Name:      "The Musical Hop",
		ImageLink: "https://example.com/hop.jpg",
	}
	artist := &models.Artist{
		ID:   uuid.New(),
		Name: "Guns N Petals",
		Shows: []models.Show{
			{Venue: venue, VenueID: venue.ID, StartTime: now.Add(time.Hour)},
		},
	}

	view := artistView(artist, now)

	assert.Equal(t, 0, view["past_shows_count"])
	assert.Equal(t, 1, view["upcoming_shows_count"])

	upcoming := view["upcoming_shows"].([]gin.H)
	require.Len(t, upcoming, 1)
	assert.Equal(t, venue.ID, upcoming[0]["venue_id"])
	assert.Equal(t, "The Musical Hop", upcoming[0]["venue_name"])
	assert.Equal(t, "https://example.com/hop.jpg", upcoming[0]["venue_image_link"])
}

func TestShowEntryResolvesBothSides(t *testing.T) {
	startTime := time.Date(2026, 7, 1, 19, 30, 0, 0, time.UTC)
	show := models.Show{
		Venue:     models.Venue{ID: uuid.New(), Name: "The Musical Hop"},
		Artist:    models.Artist{ID: uuid.New(), Name: "Guns N Petals", ImageLink: "https://example.com/petals.jpg"},
		StartTime: startTime,
	}

	entry := showEntry(show)

	assert.Equal(t, show.Venue.ID, entry["venue_id"])
	assert.Equal(t, "The Musical Hop", entry["venue_name"])
	assert.Equal(t, show.Artist.ID, entry["artist_id"])
	assert.Equal(t, "Guns N Petals", entry["artist_name"])
	assert.Equal(t, "https://example.com/petals.jpg", entry["artist_image_link"])
	assert.Equal(t, "2026-07-01 19:30:00", entry["start_time"])
}
