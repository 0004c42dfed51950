package service

import (
	"context"

	"github.com/acmedash/invoicehub.go/db/models"
	"github.com/ziflex/lecho/v3"
)

// InvoiceStore is the persistence gateway the pipeline writes through.
// Implementations take already-validated, already-normalized data and make
// a single write attempt; any failure is reported as-is and never retried.
type InvoiceStore interface {
	InsertInvoice(ctx context.Context, invoice *models.Invoice) error
	UpdateInvoice(ctx context.Context, invoice *models.Invoice) error
	DeleteInvoice(ctx context.Context, id string) error
	ListInvoices(ctx context.Context) ([]models.Invoice, error)
}

// ListingCache marks the invoices listing view stale. Fire-and-forget: the
// pipeline neither awaits nor verifies the effect.
type ListingCache interface {
	Invalidate(path string)
}

type InvoiceService struct {
	Config  *Config
	Store   InvoiceStore
	Listing ListingCache
	Logger  *lecho.Logger
}

func (svc *InvoiceService) Invoices(ctx context.Context) ([]models.Invoice, error) {
	return svc.Store.ListInvoices(ctx)
}
