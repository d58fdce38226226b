package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Venue struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Name               string    `gorm:"not null"`
	City               string    `gorm:"not null"`
	State              string    `gorm:"not null"`
	Address            string    `gorm:"not null"`
	Phone              string
	ImageLink          string
	FacebookLink       string
	Website            string
	Genres             datatypes.JSONSlice[string]
	SeekingTalent      bool
	SeekingDescription string
	Shows              []Show `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (venue *Venue) BeforeCreate(tx *gorm.DB) (err error) {
	if venue.ID == uuid.Nil {
		venue.ID = uuid.New()
	}
	return
}
