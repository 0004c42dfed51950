package db

import (
	"context"
	"database/sql"

	"github.com/acmedash/invoicehub.go/db/models"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Store is the persistence gateway for invoice writes. Every statement goes
// through bun's query builder, so caller-supplied values are always bound as
// parameters and never concatenated into SQL.
type Store struct {
	DB *bun.DB
}

func NewStore(db *bun.DB) *Store {
	return &Store{DB: db}
}

func (store *Store) InsertInvoice(ctx context.Context, invoice *models.Invoice) error {
	invoice.ID = uuid.NewString()
	_, err := store.DB.NewInsert().Model(invoice).Exec(ctx)
	return err
}

// UpdateInvoice mutates customer_id, amount and status only. The date column
// stays whatever it was at create time.
func (store *Store) UpdateInvoice(ctx context.Context, invoice *models.Invoice) error {
	result, err := store.DB.NewUpdate().
		Model(invoice).
		Column("customer_id", "amount", "status").
		WherePK().
		Exec(ctx)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (store *Store) DeleteInvoice(ctx context.Context, id string) error {
	result, err := store.DB.NewDelete().
		Model((*models.Invoice)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

func (store *Store) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	err := store.DB.NewSelect().
		Model(&invoices).
		Relation("Customer").
		Order("date DESC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

// checkAffected reports a write that matched no row as sql.ErrNoRows. The
// pipeline folds this into its generic persistence error, like any other
// store failure.
func checkAffected(result sql.Result) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
