package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StepStatusPaid   = "paid"
	StepStatusUnpaid = "unpaid"
)

// PaymentStep is one installment of a sale contract's payment schedule.
// StepNumber is 1-based and contiguous; amounts across a document must sum
// to the total land price (checked at generation time, 0.01 epsilon).
type PaymentStep struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	DocumentID  uuid.UUID       `gorm:"column:document_id;type:uuid;not null;index" json:"document_id"`
	StepNumber  int             `gorm:"column:step_number;not null" json:"step_number"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(18,2);not null" json:"amount"`
	DueDate     datatypes.Date  `gorm:"column:due_date" json:"due_date"`
	Description string          `gorm:"column:description;type:varchar(500)" json:"description"`
	Status      string          `gorm:"column:status;type:varchar(10);not null;default:unpaid" json:"status"`
}

func (PaymentStep) TableName() string {
	return "payment_steps"
}

func (s *PaymentStep) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
