package handler

import (
	"net/http"
	"strconv"
	"strings"

	"saas-sim/internal/model"
	"saas-sim/internal/simerr"
	"saas-sim/internal/sourcing"

	"github.com/labstack/echo/v4"
)

type SourcingHandler struct {
	svc *sourcing.Service
}

func NewSourcingHandler(svc *sourcing.Service) *SourcingHandler {
	return &SourcingHandler{svc: svc}
}

type createEventRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

func (h *SourcingHandler) CreateEvent(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.CreateEvent(sourcing.CreateEventParams{Name: req.Name, Type: req.Type})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SourcingHandler) GetEvent(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.svc.GetEvent(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type updateEventRequest struct {
	ID     *int    `json:"id"`
	Name   *string `json:"name"`
	Type   *string `json:"type"`
	Status *string `json:"status"`
}

func (h *SourcingHandler) UpdateEvent(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.UpdateEvent(id, sourcing.UpdateEventParams{
		ID:     req.ID,
		Name:   req.Name,
		Type:   req.Type,
		Status: req.Status,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SourcingHandler) DeleteEvent(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	if err := h.svc.DeleteEvent(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}

func (h *SourcingHandler) ListEvents(c echo.Context) error {
	filter := &sourcing.EventFilter{
		TypeEquals:   qList(c, "type_equals"),
		StatusEquals: qList(c, "status_equals"),
		NameContains: qString(c, "name_contains"),
	}
	return c.JSON(http.StatusOK, h.svc.ListEvents(filter))
}

func (h *SourcingHandler) ListEventBids(c echo.Context) error {
	// The bid listing is lenient by contract: malformed input yields an
	// empty list rather than an error.
	id, err := pathInt(c, "id")
	if err != nil {
		return c.JSON(http.StatusOK, []sourcing.BidResource{})
	}

	filter := &sourcing.BidFilter{
		StatusEquals:                    qList(c, "filter[status_equals]"),
		SupplierCompanyExternalIDEquals: qString(c, "filter[supplier_company_external_id_equals]"),
		SubmittedAtFrom:                 qString(c, "filter[submitted_at_from]"),
		SubmittedAtTo:                   qString(c, "filter[submitted_at_to]"),
	}
	var bad bool
	filter.IDEquals, bad = lenientInt(c, "filter[id_equals]", bad)
	filter.SupplierCompanyIDEquals, bad = lenientInt(c, "filter[supplier_company_id_equals]", bad)
	filter.IntendToBidEquals, bad = lenientBool(c, "filter[intend_to_bid_equals]", bad)
	filter.IntendToBidNotEquals, bad = lenientBool(c, "filter[intend_to_bid_not_equals]", bad)

	page := &sourcing.Page{}
	page.Size, bad = lenientInt(c, "page[size]", bad)
	page.Number, bad = lenientInt(c, "page[number]", bad)
	if bad {
		return c.JSON(http.StatusOK, []sourcing.BidResource{})
	}

	return c.JSON(http.StatusOK, h.svc.ListEventBids(id, filter, page, qString(c, "_include")))
}

type submitBidRequest struct {
	SupplierID int                       `json:"supplier_id"`
	BidAmount  float64                   `json:"bid_amount"`
	LineItems  []sourcing.LineItemParams `json:"line_items"`
}

func (h *SourcingHandler) SubmitBid(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var req submitBidRequest
	if err := c.Bind(&req); err != nil {
		return writeError(c, errBadBody(err))
	}
	out, err := h.svc.SubmitBid(sourcing.SubmitBidParams{
		EventID:    id,
		SupplierID: req.SupplierID,
		BidAmount:  req.BidAmount,
		LineItems:  req.LineItems,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SourcingHandler) ListBidLineItems(c echo.Context) error {
	id, err := pathInt(c, "id")
	if err != nil {
		return c.JSON(http.StatusOK, []model.BidLineItem{})
	}
	page := &sourcing.Page{}
	var bad bool
	page.Size, bad = lenientInt(c, "page[size]", bad)
	page.Number, bad = lenientInt(c, "page[number]", bad)
	if bad {
		return c.JSON(http.StatusOK, []model.BidLineItem{})
	}
	return c.JSON(http.StatusOK, h.svc.ListBidLineItems(id, page))
}

func pathInt(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, simerr.Validation("Parameter '%s' must be an integer.", name)
	}
	return n, nil
}

func qList(c echo.Context, name string) []string {
	v := c.QueryParam(name)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func lenientInt(c echo.Context, name string, bad bool) (*int, bool) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, bad
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, true
	}
	return &n, bad
}

func lenientBool(c echo.Context, name string, bad bool) (*bool, bool) {
	v := c.QueryParam(name)
	if v == "" {
		return nil, bad
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, true
	}
	return &b, bad
}
