package service

import (
	"context"
	"net/url"

	"github.com/acmedash/invoicehub.go/common"
	"github.com/acmedash/invoicehub.go/db/models"
	"github.com/acmedash/invoicehub.go/lib/responses"
)

const (
	MsgCreateMissingFields = "Missing Fields. Failed to Create Invoice."
	MsgUpdateMissingFields = "Missing Fields. Failed to Update Invoice."
	MsgCreateDatabaseError = "Database Error: Failed to Create Invoice."
	MsgUpdateDatabaseError = "Database Error: Failed to Update Invoice."
	MsgDeleteDatabaseError = "Database Error: Failed to Delete Invoice."
)

// CreateInvoice runs the full mutation pipeline for a new invoice. A nil
// result means the row was written and the listing view invalidated; the
// caller owes the user a redirect to the listing. Validation errors and
// store errors come back as a MutationResult and never reach the caller as
// a raw error.
func (svc *InvoiceService) CreateInvoice(ctx context.Context, draft url.Values) *responses.MutationResult {
	params, fieldErrors := ParseCreateDraft(draft)
	if len(fieldErrors) > 0 {
		return &responses.MutationResult{
			Errors:  fieldErrors,
			Message: MsgCreateMissingFields,
		}
	}

	invoice := &models.Invoice{
		CustomerID: params.CustomerID,
		Amount:     params.AmountInCents(),
		Status:     params.Status,
		Date:       params.Date,
	}
	if err := svc.Store.InsertInvoice(ctx, invoice); err != nil {
		svc.Logger.Errorf("Failed to insert invoice: %v", err)
		return &responses.MutationResult{Message: MsgCreateDatabaseError}
	}

	svc.Listing.Invalidate(common.InvoicesListingPath)
	return nil
}

// UpdateInvoice mutates customerId/amount/status of an existing invoice.
// The id is a lookup key only and the date column is never part of the
// update, even when the draft carries one.
func (svc *InvoiceService) UpdateInvoice(ctx context.Context, id string, draft url.Values) *responses.MutationResult {
	params, fieldErrors := ParseUpdateDraft(draft)
	if len(fieldErrors) > 0 {
		return &responses.MutationResult{
			Errors:  fieldErrors,
			Message: MsgUpdateMissingFields,
		}
	}

	invoice := &models.Invoice{
		ID:         id,
		CustomerID: params.CustomerID,
		Amount:     params.AmountInCents(),
		Status:     params.Status,
	}
	if err := svc.Store.UpdateInvoice(ctx, invoice); err != nil {
		svc.Logger.Errorf("Failed to update invoice %s: %v", id, err)
		return &responses.MutationResult{Message: MsgUpdateDatabaseError}
	}

	svc.Listing.Invalidate(common.InvoicesListingPath)
	return nil
}

// DeleteInvoice has no validation stage, the id is already trusted. On
// success the listing view is invalidated but the caller stays where it is:
// deletion never redirects. A delete that matches no row reports the same
// generic persistence error as any other store failure.
func (svc *InvoiceService) DeleteInvoice(ctx context.Context, id string) *responses.MutationResult {
	if err := svc.Store.DeleteInvoice(ctx, id); err != nil {
		svc.Logger.Errorf("Failed to delete invoice %s: %v", id, err)
		return &responses.MutationResult{Message: MsgDeleteDatabaseError}
	}

	svc.Listing.Invalidate(common.InvoicesListingPath)
	return nil
}
