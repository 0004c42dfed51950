package service

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"net/url"
	"testing"
	"time"

	"github.com/acmedash/invoicehub.go/common"
	"github.com/acmedash/invoicehub.go/db/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ziflex/lecho/v3"
)

type storeMock struct {
	insertErr error
	updateErr error
	deleteErr error
	inserted  []*models.Invoice
	updated   []*models.Invoice
	deleted   []string
}

func (m *storeMock) InsertInvoice(ctx context.Context, invoice *models.Invoice) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	invoice.ID = "inv_1"
	m.inserted = append(m.inserted, invoice)
	return nil
}

func (m *storeMock) UpdateInvoice(ctx context.Context, invoice *models.Invoice) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updated = append(m.updated, invoice)
	return nil
}

func (m *storeMock) DeleteInvoice(ctx context.Context, id string) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *storeMock) ListInvoices(ctx context.Context) ([]models.Invoice, error) {
	return []models.Invoice{}, nil
}

func (m *storeMock) calls() int {
	return len(m.inserted) + len(m.updated) + len(m.deleted)
}

type listingMock struct {
	invalidated []string
}

func (m *listingMock) Invalidate(path string) {
	m.invalidated = append(m.invalidated, path)
}

func newTestService(store *storeMock, cache *listingMock) *InvoiceService {
	return &InvoiceService{
		Config:  &Config{},
		Store:   store,
		Listing: cache,
		Logger:  lecho.New(io.Discard),
	}
}

func TestCreateInvoice(t *testing.T) {
	store := &storeMock{}
	cache := &listingMock{}
	svc := newTestService(store, cache)

	result := svc.CreateInvoice(context.Background(), url.Values{
		"customerId": {"c1"},
		"amount":     {"10.00"},
		"status":     {"pending"},
	})

	assert.Nil(t, result)
	require.Len(t, store.inserted, 1)
	invoice := store.inserted[0]
	assert.Equal(t, "c1", invoice.CustomerID)
	assert.Equal(t, int64(1000), invoice.Amount)
	assert.Equal(t, common.InvoiceStatusPending, invoice.Status)
	assert.Equal(t, time.Now().Format(common.InvoiceDateFormat), invoice.Date)
	assert.Equal(t, []string{common.InvoicesListingPath}, cache.invalidated)
}

func TestCreateInvoiceValidationFailure(t *testing.T) {
	store := &storeMock{}
	cache := &listingMock{}
	svc := newTestService(store, cache)

	result := svc.CreateInvoice(context.Background(), url.Values{})

	require.NotNil(t, result)
	assert.Equal(t, MsgCreateMissingFields, result.Message)
	assert.NotEmpty(t, result.Errors["customerId"])
	// validation failures never reach the store or the cache
	assert.Zero(t, store.calls())
	assert.Empty(t, cache.invalidated)
}

func TestCreateInvoiceStoreFailure(t *testing.T) {
	store := &storeMock{insertErr: errors.New("connection refused")}
	cache := &listingMock{}
	svc := newTestService(store, cache)

	result := svc.CreateInvoice(context.Background(), url.Values{
		"customerId": {"c1"},
		"amount":     {"10.00"},
		"status":     {"pending"},
	})

	require.NotNil(t, result)
	assert.Equal(t, MsgCreateDatabaseError, result.Message)
	// the persistence channel carries no field errors
	assert.Empty(t, result.Errors)
	assert.Empty(t, cache.invalidated)
}

func TestUpdateInvoice(t *testing.T) {
	store := &storeMock{}
	cache := &listingMock{}
	svc := newTestService(store, cache)

	result := svc.UpdateInvoice(context.Background(), "inv_42", url.Values{
		"customerId": {"c2"},
		"amount":     {"12.50"},
		"status":     {"paid"},
		"date":       {"2030-01-01"},
	})

	assert.Nil(t, result)
	require.Len(t, store.updated, 1)
	invoice := store.updated[0]
	assert.Equal(t, "inv_42", invoice.ID)
	assert.Equal(t, "c2", invoice.CustomerID)
	assert.Equal(t, int64(1250), invoice.Amount)
	assert.Equal(t, common.InvoiceStatusPaid, invoice.Status)
	// the date column is immutable, whatever the draft carries
	assert.Empty(t, invoice.Date)
	assert.Equal(t, []string{common.InvoicesListingPath}, cache.invalidated)
}

func TestUpdateInvoiceValidationFailure(t *testing.T) {
	store := &storeMock{}
	cache := &listingMock{}
	svc := newTestService(store, cache)

	result := svc.UpdateInvoice(context.Background(), "inv_42", url.Values{
		"customerId": {"c2"},
		"amount":     {"-5"},
		"status":     {"paid"},
	})

	require.NotNil(t, result)
	assert.Equal(t, MsgUpdateMissingFields, result.Message)
	assert.NotEmpty(t, result.Errors["amount"])
	assert.Zero(t, store.calls())
	assert.Empty(t, cache.invalidated)
}

func TestUpdateInvoiceStoreFailure(t *testing.T) {
	store := &storeMock{updateErr: sql.ErrNoRows}
	cache := &listingMock{}
	svc := newTestService(store, cache)

	result := svc.UpdateInvoice(context.Background(), "missing", url.Values{
		"customerId": {"c2"},
		"amount":     {"12.50"},
		"status":     {"paid"},
	})

	require.NotNil(t, result)
	assert.Equal(t, MsgUpdateDatabaseError, result.Message)
	assert.Empty(t, result.Errors)
	assert.Empty(t, cache.invalidated)
}

func TestDeleteInvoice(t *testing.T) {
	store := &storeMock{}
	cache := &listingMock{}
	svc := newTestService(store, cache)

	result := svc.DeleteInvoice(context.Background(), "inv_42")

	assert.Nil(t, result)
	assert.Equal(t, []string{"inv_42"}, store.deleted)
	assert.Equal(t, []string{common.InvoicesListingPath}, cache.invalidated)
}

func TestDeleteInvoiceStoreFailure(t *testing.T) {
	store := &storeMock{deleteErr: errors.New("connection refused")}
	cache := &listingMock{}
	svc := newTestService(store, cache)

	result := svc.DeleteInvoice(context.Background(), "inv_42")

	require.NotNil(t, result)
	assert.Equal(t, MsgDeleteDatabaseError, result.Message)
	assert.Empty(t, cache.invalidated)
}

func TestDeleteInvoiceAlreadyDeleted(t *testing.T) {
	// a second delete of the same id surfaces the store's no-row outcome as
	// the generic persistence error, never as a crash
	store := &storeMock{deleteErr: sql.ErrNoRows}
	cache := &listingMock{}
	svc := newTestService(store, cache)

	result := svc.DeleteInvoice(context.Background(), "inv_42")

	require.NotNil(t, result)
	assert.Equal(t, MsgDeleteDatabaseError, result.Message)
}
