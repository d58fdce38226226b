package store

import (
	"fmt"
	"strings"
	"time"

	"gigbook/internal/forms"
	"gigbook/internal/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ArtistSummary struct {
	ID               uuid.UUID
	Name             string
	NumUpcomingShows int
}

// ListArtists returns every artist ordered by name ascending.
func (s *Store) ListArtists() ([]models.Artist, error) {
	var artists []models.Artist
	if err := s.db.Order("name asc").Find(&artists).Error; err != nil {
		return nil, fmt.Errorf("listing artists: %w", err)
	}
	return artists, nil
}

// SearchArtists matches artists whose name contains the term, ignoring
// case. An empty term matches every artist. Each result carries the number
// of shows starting after the reference time.
func (s *Store) SearchArtists(term string, now time.Time) ([]ArtistSummary, error) {
	var artists []models.Artist
	pattern := "%" + strings.ToLower(term) + "%"
	err := s.db.Preload("Shows").Where("LOWER(name) LIKE ?", pattern).Order("name").Find(&artists).Error
	if err != nil {
		return nil, fmt.Errorf("searching artists: %w", err)
	}
	summaries := make([]ArtistSummary, 0, len(artists))
	for _, artist := range artists {
		_, upcoming := PartitionShows(artist.Shows, now)
		summaries = append(summaries, ArtistSummary{
			ID:               artist.ID,
			Name:             artist.Name,
			NumUpcomingShows: len(upcoming),
		})
	}
	return summaries, nil
}

// GetArtist fetches an artist with its shows and their venues loaded.
func (s *Store) GetArtist(id uuid.UUID) (*models.Artist, error) {
	var artist models.Artist
	err := s.db.Preload("Shows.Venue").First(&artist, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &artist, nil
}

func (s *Store) CreateArtist(form forms.ArtistForm) (*models.Artist, error) {
	artist := models.Artist{
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Phone:              form.Phone,
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		Website:            form.Website,
		Genres:             datatypes.NewJSONSlice(form.Genres),
		SeekingVenue:       form.SeekingVenue,
		SeekingDescription: form.SeekingDescription,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&artist).Error
	})
	if err != nil {
		return nil, fmt.Errorf("creating artist: %w", err)
	}
	return &artist, nil
}

// UpdateArtist overwrites every mutable field of the artist. A missing id
// is reported as ErrNotFound, never as a silent no-op.
func (s *Store) UpdateArtist(id uuid.UUID, form forms.ArtistForm) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Artist{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":                form.Name,
			"city":                form.City,
			"state":               form.State,
			"phone":               form.Phone,
			"image_link":          form.ImageLink,
			"facebook_link":       form.FacebookLink,
			"website":             form.Website,
			"genres":              datatypes.NewJSONSlice(form.Genres),
			"seeking_venue":       form.SeekingVenue,
			"seeking_description": form.SeekingDescription,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("updating artist: %w", err)
	}
	return nil
}
