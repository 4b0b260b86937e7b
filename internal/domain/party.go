package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Party is a buyer or seller record. Everything beyond the name is optional;
// the composers null-coalesce missing fields to empty strings rather than
// failing a draft document.
type Party struct {
	PartyID        uuid.UUID       `gorm:"column:party_id;type:uuid;primaryKey" json:"party_id"`
	Name           string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	DateOfBirth    *datatypes.Date `gorm:"column:date_of_birth" json:"date_of_birth"`
	Address        string          `gorm:"column:address;type:varchar(500)" json:"address"`
	IdentityNumber string          `gorm:"column:identity_number;type:varchar(50)" json:"identity_number"`
	PhoneNumber    string          `gorm:"column:phone_number;type:varchar(30)" json:"phone_number"`
	FrontImagePath string          `gorm:"column:front_image_path;type:varchar(500)" json:"front_image_path"`
	BackImagePath  string          `gorm:"column:back_image_path;type:varchar(500)" json:"back_image_path"`
	CreatedAt      time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Party) TableName() string {
	return "parties"
}

func (p *Party) BeforeCreate(tx *gorm.DB) error {
	if p.PartyID == uuid.Nil {
		p.PartyID = uuid.New()
	}
	return nil
}

// AgeAt returns the party's age in whole years at the reference date, or -1
// when no date of birth is recorded.
func (p *Party) AgeAt(ref time.Time) int {
	if p.DateOfBirth == nil {
		return -1
	}
	dob := time.Time(*p.DateOfBirth)
	years := ref.Year() - dob.Year()
	anniversary := dob.AddDate(years, 0, 0)
	if anniversary.After(ref) {
		years--
	}
	return years
}
