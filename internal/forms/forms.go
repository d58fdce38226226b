package forms

import (
	"time"

	"github.com/google/uuid"
)

// VenueForm carries a full venue record as submitted from the new/edit
// venue forms. Create and edit both overwrite every field.
type VenueForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required,state_code"`
	Address            string   `form:"address" binding:"required"`
	Phone              string   `form:"phone" binding:"omitempty,phone"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url"`
	Website            string   `form:"website_link" binding:"omitempty,url"`
	Genres             []string `form:"genres" binding:"required,dive,genre"`
	SeekingTalent      bool     `form:"seeking_talent"`
	SeekingDescription string   `form:"seeking_description"`
}

type ArtistForm struct {
	Name               string   `form:"name" binding:"required"`
	City               string   `form:"city" binding:"required"`
	State              string   `form:"state" binding:"required,state_code"`
	Phone              string   `form:"phone" binding:"omitempty,phone"`
	ImageLink          string   `form:"image_link" binding:"omitempty,url"`
	FacebookLink       string   `form:"facebook_link" binding:"omitempty,url"`
	Website            string   `form:"website_link" binding:"omitempty,url"`
	Genres             []string `form:"genres" binding:"required,dive,genre"`
	SeekingVenue       bool     `form:"seeking_venue"`
	SeekingDescription string   `form:"seeking_description"`
}

type ShowForm struct {
	ArtistID  string `form:"artist_id" binding:"required,uuid"`
	VenueID   string `form:"venue_id" binding:"required,uuid"`
	StartTime string `form:"start_time" binding:"required"`
}

const startTimeLayout = "2006-01-02 15:04:05"

// ParsedStartTime accepts the datetime-local style layout the show form
// submits, falling back to RFC3339.
func (f ShowForm) ParsedStartTime() (time.Time, error) {
	if t, err := time.Parse(startTimeLayout, f.StartTime); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, f.StartTime)
}

func (f ShowForm) ParsedArtistID() (uuid.UUID, error) {
	return uuid.Parse(f.ArtistID)
}

func (f ShowForm) ParsedVenueID() (uuid.UUID, error) {
	return uuid.Parse(f.VenueID)
}
