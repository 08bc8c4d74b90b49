package routes

import (
	"github.com/gin-gonic/gin"

	"moto_workshop/internal/adapter/http/handlers"
)

const (
	PathInvoices = "/invoices"
	PathPayments = "/payments"
)

func addBillingRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.InvoicePaymentHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/gst-summary", invoiceHandler.GSTSummary)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.GET("/:id/pdf", invoiceHandler.GetInvoicePDF)
		invoices.POST("/:id/installments/:number/payments", paymentHandler.PayInstallment)
		invoices.GET("/:id/payments", paymentHandler.ListPayments)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}
}
