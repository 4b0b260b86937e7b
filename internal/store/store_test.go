package store

import (
	"context"
	"testing"

	"landdoc-backend/internal/database"
	"landdoc-backend/internal/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

func seedDocument(t *testing.T, db *gorm.DB) uuid.UUID {
	t.Helper()

	second := domain.Party{Name: "សុខ សីហា", IdentityNumber: "ID-2"}
	first := domain.Party{Name: "ចាន់ ដារា", IdentityNumber: "ID-1"}
	seller := domain.Party{Name: "គឹម សុផល", IdentityNumber: "ID-3"}
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&seller).Error)

	land := domain.Land{PlotNumber: "A-101", Size: decimal.NewFromInt(500), Location: "ខេត្តកណ្តាល"}
	require.NoError(t, db.Create(&land).Error)

	doc := domain.ContractDocument{
		DocumentType:   domain.DocumentTypeSale,
		Status:         domain.StatusCompleted,
		TotalLandPrice: decimal.NewFromInt(60_000),
	}
	require.NoError(t, db.Create(&doc).Error)

	// Buyers inserted against selection order: "first" holds position 1
	// even though "second" was created earlier.
	require.NoError(t, db.Create(&domain.DocumentParty{
		DocumentID: doc.DocumentID, PartyID: second.PartyID, Role: domain.PartyRoleBuyer, Position: 2,
	}).Error)
	require.NoError(t, db.Create(&domain.DocumentParty{
		DocumentID: doc.DocumentID, PartyID: first.PartyID, Role: domain.PartyRoleBuyer, Position: 1,
	}).Error)
	require.NoError(t, db.Create(&domain.DocumentParty{
		DocumentID: doc.DocumentID, PartyID: seller.PartyID, Role: domain.PartyRoleSeller, Position: 1,
	}).Error)

	ppm2 := decimal.NewFromInt(120)
	require.NoError(t, db.Create(&domain.LandAllocation{
		DocumentID: doc.DocumentID, LandID: land.LandID, PricePerM2: &ppm2, Position: 1,
	}).Error)

	for i, amt := range []int64{20_000, 20_000, 20_000} {
		require.NoError(t, db.Create(&domain.PaymentStep{
			DocumentID: doc.DocumentID,
			StepNumber: i + 1,
			Amount:     decimal.NewFromInt(amt),
			Status:     domain.StepStatusUnpaid,
		}).Error)
	}
	return doc.DocumentID
}

func TestLoadDocument_HydratesAggregate(t *testing.T) {
	db := testDB(t)
	id := seedDocument(t, db)

	s := &Store{DB: db}
	doc, err := s.LoadDocument(context.Background(), id)
	require.NoError(t, err)

	buyers := doc.Buyers()
	require.Len(t, buyers, 2)
	assert.Equal(t, "ចាន់ ដារា", buyers[0].Name, "selection order, not insert order")
	assert.Equal(t, "សុខ សីហា", buyers[1].Name)

	sellers := doc.Sellers()
	require.Len(t, sellers, 1)
	assert.Equal(t, "គឹម សុផល", sellers[0].Name)

	require.Len(t, doc.Allocations, 1)
	assert.Equal(t, "A-101", doc.Allocations[0].Land.PlotNumber)
	total, ok := doc.Allocations[0].ResolveTotalPrice()
	require.True(t, ok)
	assert.True(t, total.Equal(decimal.NewFromInt(60_000)))

	require.Len(t, doc.PaymentSteps, 3)
	assert.Equal(t, 1, doc.PaymentSteps[0].StepNumber)
}

func TestLoadDocument_NotFound(t *testing.T) {
	db := testDB(t)
	s := &Store{DB: db}
	_, err := s.LoadDocument(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestSaveRenderedHTML(t *testing.T) {
	db := testDB(t)
	id := seedDocument(t, db)
	s := &Store{DB: db}

	require.NoError(t, s.SaveRenderedHTML(context.Background(), id, "<html>draft</html>"))

	doc, err := s.LoadDocument(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, doc.RenderedHTML)
	assert.Equal(t, "<html>draft</html>", *doc.RenderedHTML)

	assert.ErrorIs(t, s.SaveRenderedHTML(context.Background(), uuid.New(), "x"), ErrDocumentNotFound)
}
