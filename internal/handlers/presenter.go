package handlers

import (
	"time"

	"gigbook/internal/models"
	"gigbook/internal/store"

	"github.com/gin-gonic/gin"
)

const displayTimeLayout = "2006-01-02 15:04:05"

func formatTime(t time.Time) string {
	return t.Format(displayTimeLayout)
}

func artistShowEntry(show models.Show) gin.H {
	return gin.H{
		"artist_id":         show.Artist.ID,
		"artist_name":       show.Artist.Name,
		"artist_image_link": show.Artist.ImageLink,
		"start_time":        formatTime(show.StartTime),
	}
}

func venueShowEntry(show models.Show) gin.H {
	return gin.H{
		"venue_id":         show.Venue.ID,
		"venue_name":       show.Venue.Name,
		"venue_image_link": show.Venue.ImageLink,
		"start_time":       formatTime(show.StartTime),
	}
}

func mapShows(shows []models.Show, entry func(models.Show) gin.H) []gin.H {
	entries := make([]gin.H, 0, len(shows))
	for _, show := range shows {
		entries = append(entries, entry(show))
	}
	return entries
}

// venueView shapes a venue and its shows, partitioned around now, into the
// detail page view model. Show entries carry the counterpart artist.
func venueView(venue *models.Venue, now time.Time) gin.H {
	past, upcoming := store.PartitionShows(venue.Shows, now)
	return gin.H{
		"id":                   venue.ID,
		"name":                 venue.Name,
		"genres":               []string(venue.Genres),
		"address":              venue.Address,
		"city":                 venue.City,
		"state":                venue.State,
		"phone":                venue.Phone,
		"website":              venue.Website,
		"facebook_link":        venue.FacebookLink,
		"seeking_talent":       venue.SeekingTalent,
		"seeking_description":  venue.SeekingDescription,
		"image_link":           venue.ImageLink,
		"past_shows":           mapShows(past, artistShowEntry),
		"upcoming_shows":       mapShows(upcoming, artistShowEntry),
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	}
}

// artistView is the artist-side counterpart of venueView; show entries
// carry the counterpart venue.
func artistView(artist *models.Artist, now time.Time) gin.H {
	past, upcoming := store.PartitionShows(artist.Shows, now)
	return gin.H{
		"id":                   artist.ID,
		"name":                 artist.Name,
		"genres":               []string(artist.Genres),
		"city":                 artist.City,
		"state":                artist.State,
		"phone":                artist.Phone,
		"website":              artist.Website,
		"facebook_link":        artist.FacebookLink,
		"seeking_venue":        artist.SeekingVenue,
		"seeking_description":  artist.SeekingDescription,
		"image_link":           artist.ImageLink,
		"past_shows":           mapShows(past, venueShowEntry),
		"upcoming_shows":       mapShows(upcoming, venueShowEntry),
		"past_shows_count":     len(past),
		"upcoming_shows_count": len(upcoming),
	}
}

// showEntry shapes one show row for the shows listing, with both sides
// resolved to names.
func showEntry(show models.Show) gin.H {
	return gin.H{
		"venue_id":          show.Venue.ID,
		"venue_name":        show.Venue.Name,
		"artist_id":         show.Artist.ID,
		"artist_name":       show.Artist.Name,
		"artist_image_link": show.Artist.ImageLink,
		"start_time":        formatTime(show.StartTime),
	}
}
