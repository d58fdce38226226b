package store

import (
	"fmt"
	"time"

	"gigbook/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PartitionShows splits shows around the reference time. The boundary is
// strict: a show starting exactly at now is neither past nor upcoming.
func PartitionShows(shows []models.Show, now time.Time) (past, upcoming []models.Show) {
	for _, show := range shows {
		switch {
		case show.StartTime.Before(now):
			past = append(past, show)
		case show.StartTime.After(now):
			upcoming = append(upcoming, show)
		}
	}
	return past, upcoming
}

// ListShows returns all shows with their venue and artist loaded, ordered
// by start time.
func (s *Store) ListShows() ([]models.Show, error) {
	var shows []models.Show
	err := s.db.Preload("Venue").Preload("Artist").Order("start_time").Find(&shows).Error
	if err != nil {
		return nil, fmt.Errorf("listing shows: %w", err)
	}
	return shows, nil
}

// CreateShow inserts a show after checking that both referenced rows exist;
// a missing venue or artist is reported as ErrNotFound.
func (s *Store) CreateShow(venueID, artistID uuid.UUID, startTime time.Time) (*models.Show, error) {
	show := models.Show{
		VenueID:   venueID,
		ArtistID:  artistID,
		StartTime: startTime,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&models.Venue{}, "id = ?", venueID).Error; err != nil {
			return translate(err)
		}
		if err := tx.First(&models.Artist{}, "id = ?", artistID).Error; err != nil {
			return translate(err)
		}
		return tx.Create(&show).Error
	})
	if err != nil {
		return nil, fmt.Errorf("creating show: %w", err)
	}
	return &show, nil
}
