package common

const (
	InvoiceStatusPending = "pending"
	InvoiceStatusPaid    = "paid"

	// InvoiceDateFormat is the wire and storage format of the invoice date.
	InvoiceDateFormat = "2006-01-02"

	// InvoicesListingPath is the listing view every write invalidates.
	InvoicesListingPath = "/dashboard/invoices"
)
