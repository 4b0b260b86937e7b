package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Document types and statuses. The generation engine branches on type; status
// is owned by the wizard flow in the CRUD layer.
const (
	DocumentTypeDeposit = "deposit_contract"
	DocumentTypeSale    = "sale_contract"

	StatusDraft     = "draft"
	StatusCompleted = "completed"

	PartyRoleBuyer  = "buyer"
	PartyRoleSeller = "seller"
)

// ContractDocument is the aggregate root for one deposit or sale contract.
// The engine reads a fully-hydrated snapshot and never mutates it, except
// that callers may write RenderedHTML back as a cached/edited draft.
type ContractDocument struct {
	DocumentID     uuid.UUID       `gorm:"column:document_id;type:uuid;primaryKey" json:"document_id"`
	DocumentType   string          `gorm:"column:document_type;type:varchar(20);not null" json:"document_type"`
	Status         string          `gorm:"column:status;type:varchar(20);not null;default:draft" json:"status"`
	TotalLandPrice decimal.Decimal `gorm:"column:total_land_price;type:decimal(18,2);not null" json:"total_land_price"`
	DepositAmount  decimal.Decimal `gorm:"column:deposit_amount;type:decimal(18,2)" json:"deposit_amount"`
	DepositPeriod  string          `gorm:"column:deposit_period;type:varchar(50)" json:"deposit_period"`
	RenderedHTML   *string         `gorm:"column:rendered_html;type:text" json:"rendered_html"`
	CreatedByID    *uuid.UUID      `gorm:"column:created_by_id;type:uuid" json:"created_by_id"`
	CreatedAt      time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at" json:"updated_at"`

	Parties      []DocumentParty  `gorm:"foreignKey:DocumentID" json:"parties"`
	Allocations  []LandAllocation `gorm:"foreignKey:DocumentID" json:"allocations"`
	PaymentSteps []PaymentStep    `gorm:"foreignKey:DocumentID" json:"payment_steps"`
}

func (ContractDocument) TableName() string {
	return "contract_documents"
}

func (d *ContractDocument) BeforeCreate(tx *gorm.DB) error {
	if d.DocumentID == uuid.Nil {
		d.DocumentID = uuid.New()
	}
	return nil
}

// Buyers returns the document's buyers in wizard selection order.
func (d *ContractDocument) Buyers() []Party {
	return d.partiesByRole(PartyRoleBuyer)
}

// Sellers returns the document's sellers in wizard selection order.
func (d *ContractDocument) Sellers() []Party {
	return d.partiesByRole(PartyRoleSeller)
}

func (d *ContractDocument) partiesByRole(role string) []Party {
	joins := make([]DocumentParty, 0, len(d.Parties))
	for _, dp := range d.Parties {
		if dp.Role == role {
			joins = append(joins, dp)
		}
	}
	sort.SliceStable(joins, func(i, j int) bool { return joins[i].Position < joins[j].Position })
	out := make([]Party, len(joins))
	for i, dp := range joins {
		out[i] = dp.Party
	}
	return out
}

// DocumentParty is the ordered join row between a document and a buyer or
// seller. Position records selection order in the wizard; contract prose must
// list parties in that order, not alphabetically.
type DocumentParty struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	DocumentID uuid.UUID `gorm:"column:document_id;type:uuid;not null;index" json:"document_id"`
	PartyID    uuid.UUID `gorm:"column:party_id;type:uuid;not null" json:"party_id"`
	Role       string    `gorm:"column:role;type:varchar(10);not null" json:"role"`
	Position   int       `gorm:"column:position;not null" json:"position"`

	Party Party `gorm:"foreignKey:PartyID;references:PartyID" json:"party"`
}

func (DocumentParty) TableName() string {
	return "document_parties"
}

func (p *DocumentParty) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
