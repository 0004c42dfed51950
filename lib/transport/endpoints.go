package transport

import (
	"github.com/acmedash/invoicehub.go/common"
	"github.com/acmedash/invoicehub.go/controllers"
	"github.com/acmedash/invoicehub.go/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterEndpoints(svc *service.InvoiceService, e *echo.Echo, listingCacheMw echo.MiddlewareFunc, logMw echo.MiddlewareFunc) {
	e.GET("/health", controllers.NewHealthController().Check)

	e.POST(common.InvoicesListingPath, controllers.NewCreateInvoiceController(svc).CreateInvoice, logMw)
	e.PUT(common.InvoicesListingPath+"/:id", controllers.NewUpdateInvoiceController(svc).UpdateInvoice, logMw)
	e.DELETE(common.InvoicesListingPath+"/:id", controllers.NewDeleteInvoiceController(svc).DeleteInvoice, logMw)

	// the listing view is served through the response cache; the mutation
	// pipeline releases its entry after every successful write
	e.GET(common.InvoicesListingPath, controllers.NewGetInvoicesController(svc).GetInvoices, listingCacheMw, logMw)
}
