package controllers

import (
	"net/http"

	"github.com/acmedash/invoicehub.go/common"
	"github.com/acmedash/invoicehub.go/lib/responses"
	"github.com/acmedash/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// UpdateInvoiceController : Update invoice controller struct
type UpdateInvoiceController struct {
	svc *service.InvoiceService
}

func NewUpdateInvoiceController(svc *service.InvoiceService) *UpdateInvoiceController {
	return &UpdateInvoiceController{svc: svc}
}

// UpdateInvoice godoc
// @Summary      Update an invoice
// @Description  Validates the submitted form, updates customerId/amount/status and redirects to the listing
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Tags         Invoice
// @Param        id          path      string  true  "Invoice identifier"
// @Param        customerId  formData  string  true  "Customer identifier"
// @Param        amount      formData  string  true  "Decimal amount, e.g. 12.50"
// @Param        status      formData  string  true  "pending or paid"
// @Success      303
// @Failure      400  {object}  responses.MutationResult
// @Failure      500  {object}  responses.MutationResult
// @Router       /dashboard/invoices/{id} [put]
func (controller *UpdateInvoiceController) UpdateInvoice(c echo.Context) error {
	form, err := c.FormParams()
	if err != nil {
		c.Logger().Errorf("Failed to parse invoice form: %v", err)
		return c.JSON(http.StatusBadRequest, responses.BadArgumentsError)
	}

	result := controller.svc.UpdateInvoice(c.Request().Context(), c.Param("id"), form)
	if result != nil {
		if len(result.Errors) > 0 {
			return c.JSON(http.StatusBadRequest, result)
		}
		return c.JSON(http.StatusInternalServerError, result)
	}

	return c.Redirect(http.StatusSeeOther, common.InvoicesListingPath)
}
