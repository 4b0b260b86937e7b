package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Land is one parcel. Size is square metres.
type Land struct {
	LandID         uuid.UUID       `gorm:"column:land_id;type:uuid;primaryKey" json:"land_id"`
	PlotNumber     string          `gorm:"column:plot_number;type:varchar(50);not null" json:"plot_number"`
	Size           decimal.Decimal `gorm:"column:size;type:decimal(18,2);not null" json:"size"`
	Location       string          `gorm:"column:location;type:varchar(500)" json:"location"`
	FrontImagePath string          `gorm:"column:front_image_path;type:varchar(500)" json:"front_image_path"`
	BackImagePath  string          `gorm:"column:back_image_path;type:varchar(500)" json:"back_image_path"`
	CreatedAt      time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

func (Land) TableName() string {
	return "lands"
}

func (l *Land) BeforeCreate(tx *gorm.DB) error {
	if l.LandID == uuid.Nil {
		l.LandID = uuid.New()
	}
	return nil
}

// LandAllocation prices one parcel within one document. Exactly one of
// PricePerM2 and TotalPrice is entered in the wizard; ResolveTotalPrice
// yields the effective total either way.
type LandAllocation struct {
	ID         uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	DocumentID uuid.UUID        `gorm:"column:document_id;type:uuid;not null;index" json:"document_id"`
	LandID     uuid.UUID        `gorm:"column:land_id;type:uuid;not null" json:"land_id"`
	PricePerM2 *decimal.Decimal `gorm:"column:price_per_m2;type:decimal(18,2)" json:"price_per_m2"`
	TotalPrice *decimal.Decimal `gorm:"column:total_price;type:decimal(18,2)" json:"total_price"`
	Position   int              `gorm:"column:position;not null" json:"position"`

	Land Land `gorm:"foreignKey:LandID;references:LandID" json:"land"`
}

func (LandAllocation) TableName() string {
	return "land_allocations"
}

func (a *LandAllocation) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// ResolveTotalPrice returns size × price_per_m2 when a unit price was
// entered, else the stored total, and false when neither is present.
func (a *LandAllocation) ResolveTotalPrice() (decimal.Decimal, bool) {
	if a.PricePerM2 != nil {
		return a.Land.Size.Mul(*a.PricePerM2).Round(2), true
	}
	if a.TotalPrice != nil {
		return *a.TotalPrice, true
	}
	return decimal.Zero, false
}
