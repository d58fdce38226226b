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

type VenueSummary struct {
	ID               uuid.UUID
	Name             string
	NumUpcomingShows int
}

// Area groups the venues sharing a (city, state) pair.
type Area struct {
	City   string
	State  string
	Venues []VenueSummary
}

// VenueAreas returns every venue grouped by (city, state). Venues are
// fetched ordered by city, state and name, so the grouping is deterministic
// for a fixed dataset.
func (s *Store) VenueAreas(now time.Time) ([]Area, error) {
	var venues []models.Venue
	err := s.db.Preload("Shows").Order("city, state, name").Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("listing venues: %w", err)
	}
	return GroupVenuesByArea(venues, now), nil
}

// GroupVenuesByArea folds an ordered venue slice into one Area per distinct
// (city, state) pair, preserving input order.
func GroupVenuesByArea(venues []models.Venue, now time.Time) []Area {
	var areas []Area
	for _, venue := range venues {
		_, upcoming := PartitionShows(venue.Shows, now)
		summary := VenueSummary{
			ID:               venue.ID,
			Name:             venue.Name,
			NumUpcomingShows: len(upcoming),
		}
		if n := len(areas); n > 0 && areas[n-1].City == venue.City && areas[n-1].State == venue.State {
			areas[n-1].Venues = append(areas[n-1].Venues, summary)
			continue
		}
		areas = append(areas, Area{
			City:   venue.City,
			State:  venue.State,
			Venues: []VenueSummary{summary},
		})
	}
	return areas
}

// SearchVenues matches venues whose name contains the term, ignoring case.
// An empty term matches every venue.
func (s *Store) SearchVenues(term string) ([]VenueSummary, error) {
	var venues []models.Venue
	pattern := "%" + strings.ToLower(term) + "%"
	err := s.db.Where("LOWER(name) LIKE ?", pattern).Order("name").Find(&venues).Error
	if err != nil {
		return nil, fmt.Errorf("searching venues: %w", err)
	}
	summaries := make([]VenueSummary, 0, len(venues))
	for _, venue := range venues {
		summaries = append(summaries, VenueSummary{ID: venue.ID, Name: venue.Name})
	}
	return summaries, nil
}

// GetVenue fetches a venue with its shows and their artists loaded.
func (s *Store) GetVenue(id uuid.UUID) (*models.Venue, error) {
	var venue models.Venue
	err := s.db.Preload("Shows.Artist").First(&venue, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &venue, nil
}

func (s *Store) CreateVenue(form forms.VenueForm) (*models.Venue, error) {
	venue := models.Venue{
		Name:               form.Name,
		City:               form.City,
		State:              form.State,
		Address:            form.Address,
		Phone:              form.Phone,
		ImageLink:          form.ImageLink,
		FacebookLink:       form.FacebookLink,
		Website:            form.Website,
		Genres:             datatypes.NewJSONSlice(form.Genres),
		SeekingTalent:      form.SeekingTalent,
		SeekingDescription: form.SeekingDescription,
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&venue).Error
	})
	if err != nil {
		return nil, fmt.Errorf("creating venue: %w", err)
	}
	return &venue, nil
}

// UpdateVenue overwrites every mutable field of the venue. A missing id is
// reported as ErrNotFound, never as a silent no-op.
func (s *Store) UpdateVenue(id uuid.UUID, form forms.VenueForm) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Venue{}).Where("id = ?", id).Updates(map[string]interface{}{
			"name":                form.Name,
			"city":                form.City,
			"state":               form.State,
			"address":             form.Address,
			"phone":               form.Phone,
			"image_link":          form.ImageLink,
			"facebook_link":       form.FacebookLink,
			"website":             form.Website,
			"genres":              datatypes.NewJSONSlice(form.Genres),
			"seeking_talent":      form.SeekingTalent,
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
		return fmt.Errorf("updating venue: %w", err)
	}
	return nil
}

// DeleteVenue removes the venue and its shows. The shows are deleted inside
// the same transaction rather than relying on the database cascade alone,
// so the behavior holds on backends without FK enforcement enabled.
func (s *Store) DeleteVenue(id uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("venue_id = ?", id).Delete(&models.Show{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Venue{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("deleting venue: %w", err)
	}
	return nil
}
