package controllers

import (
	"net/http"

	"github.com/acmedash/invoicehub.go/common"
	"github.com/acmedash/invoicehub.go/lib/responses"
	"github.com/acmedash/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// CreateInvoiceController : Create invoice controller struct
type CreateInvoiceController struct {
	svc *service.InvoiceService
}

func NewCreateInvoiceController(svc *service.InvoiceService) *CreateInvoiceController {
	return &CreateInvoiceController{svc: svc}
}

// CreateInvoice godoc
// @Summary      Create an invoice
// @Description  Validates the submitted form, stores the invoice and redirects to the listing
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Tags         Invoice
// @Param        customerId  formData  string  true  "Customer identifier"
// @Param        amount      formData  string  true  "Decimal amount, e.g. 12.50"
// @Param        status      formData  string  true  "pending or paid"
// @Success      303
// @Failure      400  {object}  responses.MutationResult
// @Failure      500  {object}  responses.MutationResult
// @Router       /dashboard/invoices [post]
func (controller *CreateInvoiceController) CreateInvoice(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		c.Logger().Errorf("Failed to parse invoice form: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	result := controller.svc.CreateInvoice(c.Request().Context(), form)
	if result != nil {
		if len(result.Errors) > 0 {
			return c.JSON(http.StatusBadRequest, result)
		}
		return c.JSON(http.StatusInternalServerError, result)
	}

	return c.Redirect(http.StatusSeeOther, common.InvoicesListingPath)
}
