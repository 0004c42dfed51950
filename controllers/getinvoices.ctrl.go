package controllers

import (
	"net/http"

	"github.com/acmedash/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

// GetInvoicesController serves the invoices listing view. The route is
// wrapped by the response cache middleware; writes release the cached entry
// through the listing cache.
type GetInvoicesController struct {
	svc *service.InvoiceService
}

func NewGetInvoicesController(svc *service.InvoiceService) *GetInvoicesController {
	return &GetInvoicesController{svc: svc}
}

// GetInvoices godoc
// @Summary      Retrieve invoices
// @Description  Returns all invoices with their customers, newest first
// @Produce      json
// @Tags         Invoice
// @Success      200  {object}  []models.Invoice
// @Failure      500  {object}  responses.ErrorResponse
// @Router       /dashboard/invoices [get]
func (controller *GetInvoicesController) GetInvoices(c echo.Context) error {
	invoices, err := controller.svc.Invoices(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, invoices)
}
