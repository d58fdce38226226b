package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Show links one Artist to one Venue at a start time. It does not exist
// independently: deleting either side cascades to the show rows.
type Show struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	VenueID   uuid.UUID `gorm:"type:uuid;not null"`
	Venue     Venue
	ArtistID  uuid.UUID `gorm:"type:uuid;not null"`
	Artist    Artist
	StartTime time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (show *Show) BeforeCreate(tx *gorm.DB) (err error) {
	if show.ID == uuid.Nil {
		show.ID = uuid.New()
	}
	return
}
