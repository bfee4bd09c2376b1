package handler

import (
	"net/http"

	"saas-sim/internal/payments"

	"github.com/labstack/echo/v4"
)

type PaymentsHandler struct {
	svc *payments.Service
}

func NewPaymentsHandler(svc *payments.Service) *PaymentsHandler {
	return &PaymentsHandler{svc: svc}
}

func (h *PaymentsHandler) CreateCustomer(c echo.Context) error {
	var p payments.CreateCustomerParams
	if err := c.Bind(&p); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.CreateCustomer(p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) ListCustomers(c echo.Context) error {
	limit, err := qInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.ListCustomers(payments.ListCustomersParams{
		Email: qString(c, "email"),
		Limit: limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) CreateProduct(c echo.Context) error {
	var p payments.CreateProductParams
	if err := c.Bind(&p); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.CreateProduct(p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) ListProducts(c echo.Context) error {
	limit, err := qInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.ListProducts(payments.ListProductsParams{Limit: limit})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) DeleteProduct(c echo.Context) error {
	out, err := h.svc.DeleteProduct(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) CreatePrice(c echo.Context) error {
	var p payments.CreatePriceParams
	if err := c.Bind(&p); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.CreatePrice(p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) ListPrices(c echo.Context) error {
	limit, err := qInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.ListPrices(payments.ListPricesParams{
		Product: qString(c, "product"),
		Limit:   limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) CreatePaymentLink(c echo.Context) error {
	var p payments.CreatePaymentLinkParams
	if err := c.Bind(&p); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.CreatePaymentLink(p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) ListPaymentLinks(c echo.Context) error {
	limit, err := qInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.ListPaymentLinks(payments.ListPaymentLinksParams{Limit: limit})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) CreatePaymentIntent(c echo.Context) error {
	var p payments.CreatePaymentIntentParams
	if err := c.Bind(&p); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.CreatePaymentIntent(p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) ListPaymentIntents(c echo.Context) error {
	limit, err := qInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.ListPaymentIntents(payments.ListPaymentIntentsParams{
		Customer:      qString(c, "customer"),
		Limit:         limit,
		StartingAfter: qString(c, "starting_after"),
		EndingBefore:  qString(c, "ending_before"),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) CreateRefund(c echo.Context) error {
	var p payments.CreateRefundParams
	if err := c.Bind(&p); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.CreateRefund(p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) ListRefunds(c echo.Context) error {
	limit, err := qInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.ListRefunds(payments.ListRefundsParams{
		PaymentIntent: qString(c, "payment_intent"),
		Limit:         limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) CreateInvoice(c echo.Context) error {
	var p payments.CreateInvoiceParams
	if err := c.Bind(&p); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.CreateInvoice(p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) CreateInvoiceItem(c echo.Context) error {
	var p payments.CreateInvoiceItemParams
	if err := c.Bind(&p); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.CreateInvoiceItem(p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) FinalizeInvoice(c echo.Context) error {
	out, err := h.svc.FinalizeInvoice(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) ListInvoices(c echo.Context) error {
	limit, err := qInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	created, err := createdFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.ListInvoices(payments.ListInvoicesParams{
		Customer:      qString(c, "customer"),
		Status:        qString(c, "status"),
		Created:       created,
		StartingAfter: qString(c, "starting_after"),
		EndingBefore:  qString(c, "ending_before"),
		Limit:         limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// createdFilter reads the created[gte] family of query parameters.
func createdFilter(c echo.Context) (*payments.CreatedFilter, error) {
	gte, err := qInt64(c, "created[gte]")
	if err != nil {
		return nil, err
	}
	lte, err := qInt64(c, "created[lte]")
	if err != nil {
		return nil, err
	}
	gt, err := qInt64(c, "created[gt]")
	if err != nil {
		return nil, err
	}
	lt, err := qInt64(c, "created[lt]")
	if err != nil {
		return nil, err
	}
	if gte == nil && lte == nil && gt == nil && lt == nil {
		return nil, nil
	}
	return &payments.CreatedFilter{Gte: gte, Lte: lte, Gt: gt, Lt: lt}, nil
}

func (h *PaymentsHandler) CreateCoupon(c echo.Context) error {
	var p payments.CreateCouponParams
	if err := c.Bind(&p); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.CreateCoupon(p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) ListCoupons(c echo.Context) error {
	limit, err := qInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.ListCoupons(payments.ListCouponsParams{Limit: limit})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) ListSubscriptions(c echo.Context) error {
	limit, err := qInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.ListSubscriptions(payments.ListSubscriptionsParams{
		Customer: qString(c, "customer"),
		Price:    qString(c, "price"),
		Status:   qString(c, "status"),
		Limit:    limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) CancelSubscription(c echo.Context) error {
	out, err := h.svc.CancelSubscription(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateSubscriptionRequest struct {
	Items             []payments.UpdateSubscriptionItem `json:"items"`
	ProrationBehavior *string                           `json:"proration_behavior"`
}

func (h *PaymentsHandler) UpdateSubscription(c echo.Context) error {
	var req updateSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.UpdateSubscription(payments.UpdateSubscriptionParams{
		Subscription:      c.Param("id"),
		Items:             req.Items,
		ProrationBehavior: req.ProrationBehavior,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentsHandler) ListDisputes(c echo.Context) error {
	limit, err := qInt(c, "limit")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.ListDisputes(payments.ListDisputesParams{
		Charge:        qString(c, "charge"),
		PaymentIntent: qString(c, "payment_intent"),
		Limit:         limit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateDisputeRequest struct {
	Evidence map[string]any `json:"evidence"`
	Submit   bool           `json:"submit"`
}

func (h *PaymentsHandler) UpdateDispute(c echo.Context) error {
	var req updateDisputeRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.UpdateDispute(payments.UpdateDisputeParams{
		Dispute:  c.Param("id"),
		Evidence: req.Evidence,
		Submit:   req.Submit,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
