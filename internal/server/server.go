package server

import (
	"net/http"

	"saas-sim/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo             *echo.Echo
	paymentsHandler  *handler.PaymentsHandler
	messagingHandler *handler.MessagingHandler
	sourcingHandler  *handler.SourcingHandler
	stateHandler     *handler.StateHandler
}

func NewServer(
	paymentsHandler *handler.PaymentsHandler,
	messagingHandler *handler.MessagingHandler,
	sourcingHandler *handler.SourcingHandler,
	stateHandler *handler.StateHandler,
) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:             e,
		paymentsHandler:  paymentsHandler,
		messagingHandler: messagingHandler,
		sourcingHandler:  sourcingHandler,
		stateHandler:     stateHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api.POST("/state/save", s.stateHandler.Save)
	api.POST("/state/load", s.stateHandler.Load)

	// -------- payments --------
	pay := api.Group("/payments")
	pay.POST("/customers", s.paymentsHandler.CreateCustomer)
	pay.GET("/customers", s.paymentsHandler.ListCustomers)
	pay.POST("/products", s.paymentsHandler.CreateProduct)
	pay.GET("/products", s.paymentsHandler.ListProducts)
	pay.DELETE("/products/:id", s.paymentsHandler.DeleteProduct)
	pay.POST("/prices", s.paymentsHandler.CreatePrice)
	pay.GET("/prices", s.paymentsHandler.ListPrices)
	pay.POST("/payment_links", s.paymentsHandler.CreatePaymentLink)
	pay.GET("/payment_links", s.paymentsHandler.ListPaymentLinks)
	pay.POST("/payment_intents", s.paymentsHandler.CreatePaymentIntent)
	pay.GET("/payment_intents", s.paymentsHandler.ListPaymentIntents)
	pay.POST("/refunds", s.paymentsHandler.CreateRefund)
	pay.GET("/refunds", s.paymentsHandler.ListRefunds)
	pay.POST("/invoices", s.paymentsHandler.CreateInvoice)
	pay.GET("/invoices", s.paymentsHandler.ListInvoices)
	pay.POST("/invoices/:id/finalize", s.paymentsHandler.FinalizeInvoice)
	pay.POST("/invoice_items", s.paymentsHandler.CreateInvoiceItem)
	pay.POST("/coupons", s.paymentsHandler.CreateCoupon)
	pay.GET("/coupons", s.paymentsHandler.ListCoupons)
	pay.GET("/subscriptions", s.paymentsHandler.ListSubscriptions)
	pay.POST("/subscriptions/:id", s.paymentsHandler.UpdateSubscription)
	pay.DELETE("/subscriptions/:id", s.paymentsHandler.CancelSubscription)
	pay.GET("/disputes", s.paymentsHandler.ListDisputes)
	pay.POST("/disputes/:id", s.paymentsHandler.UpdateDispute)

	// -------- messaging --------
	msg := api.Group("/messaging")
	msg.GET("/chats", s.messagingHandler.ListChats)
	msg.GET("/chats/:jid", s.messagingHandler.GetChat)
	msg.POST("/messages", s.messagingHandler.SendMessage)
	msg.GET("/messages", s.messagingHandler.ListMessages)
	msg.GET("/messages/:id/context", s.messagingHandler.GetMessageContext)

	// -------- sourcing --------
	src := api.Group("/sourcing")
	src.POST("/events", s.sourcingHandler.CreateEvent)
	src.GET("/events", s.sourcingHandler.ListEvents)
	src.GET("/events/:id", s.sourcingHandler.GetEvent)
	src.PATCH("/events/:id", s.sourcingHandler.UpdateEvent)
	src.DELETE("/events/:id", s.sourcingHandler.DeleteEvent)
	src.GET("/events/:id/bids", s.sourcingHandler.ListEventBids)
	src.POST("/events/:id/bids", s.sourcingHandler.SubmitBid)
	src.GET("/bids/:id/line_items", s.sourcingHandler.ListBidLineItems)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
