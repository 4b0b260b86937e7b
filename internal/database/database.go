package database

import (
	"strings"

	"landdoc-backend/internal/domain"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open opens a GORM DB. Postgres DSNs go through the pgx driver with
// PreferSimpleProtocol to stay pooler-safe (PgBouncer/Supabase); anything
// else is treated as a local SQLite path, which is what the render CLI uses
// for offline fixtures.
func Open(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{})
}

// AutoMigrate creates the contract aggregate tables (local/test databases).
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Party{},
		&domain.Land{},
		&domain.ContractDocument{},
		&domain.DocumentParty{},
		&domain.LandAllocation{},
		&domain.PaymentStep{},
	)
}
