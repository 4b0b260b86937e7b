package store

import (
	"context"
	"errors"
	"fmt"

	"landdoc-backend/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrDocumentNotFound is returned when no document exists for the given id.
var ErrDocumentNotFound = errors.New("contract document not found")

// Store hydrates contract aggregates for the generation engine. It is a
// read path only; all writes belong to the CRUD layer.
type Store struct {
	DB *gorm.DB
}

// LoadDocument loads the full aggregate with every association the engine
// needs, in wizard selection order.
func (s *Store) LoadDocument(ctx context.Context, id uuid.UUID) (*domain.ContractDocument, error) {
	var doc domain.ContractDocument
	err := s.DB.WithContext(ctx).
		Preload("Parties", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Parties.Party").
		Preload("Allocations", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		Preload("Allocations.Land").
		Preload("PaymentSteps", func(db *gorm.DB) *gorm.DB { return db.Order("step_number ASC") }).
		First(&doc, "document_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load document %s: %w", id, err)
	}
	return &doc, nil
}

// SaveRenderedHTML writes the generated (or editor-revised) HTML back onto
// the document as a cached draft. This is the only write the engine's
// callers perform through this package.
func (s *Store) SaveRenderedHTML(ctx context.Context, id uuid.UUID, html string) error {
	res := s.DB.WithContext(ctx).
		Model(&domain.ContractDocument{}).
		Where("document_id = ?", id).
		Update("rendered_html", html)
	if res.Error != nil {
		return fmt.Errorf("save rendered html: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
