package controllers

import (
	"net/http"

	"github.com/acmedash/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// DeleteInvoiceController : Delete invoice controller struct
type DeleteInvoiceController struct {
	svc *service.InvoiceService
}

func NewDeleteInvoiceController(svc *service.InvoiceService) *DeleteInvoiceController {
	return &DeleteInvoiceController{svc: svc}
}

// DeleteInvoice godoc
// @Summary      Delete an invoice
// @Description  Deletes the invoice and invalidates the listing view; the caller stays on the current view
// @Produce      json
// @Tags         Invoice
// @Param        id  path  string  true  "Invoice identifier"
// @Success      204
// @Failure      500  {object}  responses.MutationResult
// @Router       /dashboard/invoices/{id} [delete]
func (controller *DeleteInvoiceController) DeleteInvoice(c echo.Context) error {
	result := controller.svc.DeleteInvoice(c.Request().Context(), c.Param("id"))
	if result != nil {
		return c.JSON(http.StatusInternalServerError, result)
	}

	// deletion invalidates the listing but deliberately does not redirect
	return c.NoContent(http.StatusNoContent)
}
