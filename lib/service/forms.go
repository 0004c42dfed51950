package service

import (
	"net/url"
	"reflect"
	"strings"
	"time"

	"github.com/acmedash/invoicehub.go/common"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// InvoiceParams is the shared rule table for invoice drafts. The create
// variant validates every field; the update variant skips Date.
type InvoiceParams struct {
	CustomerID string          `form:"customerId" validate:"required"`
	Amount     decimal.Decimal `form:"amount" validate:"gt=0"`
	Status     string          `form:"status" validate:"required,oneof=pending paid"`
	Date       string          `form:"date" validate:"required,datetime=2006-01-02"`
}

// AmountInCents converts the validated decimal amount into minor currency
// units: round(amount * 100).
func (params *InvoiceParams) AmountInCents() int64 {
	return params.Amount.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

var fieldMessages = map[string]string{
	"customerId": "Please select a customer.",
	"amount":     "Please enter an amount greater than $0.",
	"status":     "Please select an invoice status.",
	"date":       "Please enter a valid date.",
}

var validate = newDraftValidator()

func newDraftValidator() *validator.Validate {
	v := validator.New()
	// report errors under the form field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// lets numeric rules (gt=0) apply to decimal amounts
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// ParseCreateDraft validates a full draft. The date is server-assigned, not
// user input, so it cannot produce a field error on this path.
func ParseCreateDraft(form url.Values) (*InvoiceParams, map[string][]string) {
	params := draftParams(form)
	params.Date = time.Now().Format(common.InvoiceDateFormat)
	return params, collectFieldErrors(validate.Struct(params))
}

// ParseUpdateDraft validates the update subset: the identifier is a lookup
// key supplied outside the draft, and the date is immutable, so neither is
// part of the schema.
func ParseUpdateDraft(form url.Values) (*InvoiceParams, map[string][]string) {
	params := draftParams(form)
	return params, collectFieldErrors(validate.StructExcept(params, "Date"))
}

func draftParams(form url.Values) *InvoiceParams {
	// a failed coercion leaves the zero decimal, which fails the gt=0 rule
	amount, _ := decimal.NewFromString(form.Get("amount"))
	return &InvoiceParams{
		CustomerID: form.Get("customerId"),
		Amount:     amount,
		Status:     form.Get("status"),
	}
}

// collectFieldErrors gathers every failing field in one pass; validation
// never stops at the first failure.
func collectFieldErrors(err error) map[string][]string {
	if err == nil {
		return nil
	}
	fieldErrors := map[string][]string{}
	for _, fieldError := range err.(validator.ValidationErrors) {
		field := fieldError.Field()
		fieldErrors[field] = append(fieldErrors[field], fieldMessages[field])
	}
	return fieldErrors
}
