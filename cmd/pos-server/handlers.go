package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restopos/internal/httpx"
	"restopos/internal/menu"
	"restopos/internal/order"
	"restopos/internal/payment"
	"restopos/internal/table"
)

// HTTPError represents a standard error in JSON.
// swagger:model
type HTTPError struct {
	// Error message
	// example: order not found
	Error string `json:"error"`
}

func writeError(c *gin.Context, err error) {
	var conflict *order.TableConflictError
	var unavailable *order.ItemUnavailableError
	var bindWarn *order.BindWarningError
	switch {
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":                conflict.Error(),
			"conflicting_order_id": conflict.ConflictingOrderID,
		})
	case errors.As(err, &unavailable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": unavailable.Error()})
	case errors.As(err, &bindWarn):
		// Not a clean validation failure: the order write was attempted
		// and rolled back. Operators should check the table record.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   bindWarn.Error(),
			"warning": "table_binding",
		})
	case errors.Is(err, order.ErrNotFound),
		errors.Is(err, menu.ErrNotFound),
		errors.Is(err, table.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrInvalidState), errors.Is(err, order.ErrAlreadyPaid):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrPaymentRequired):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrTableInactive):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

func staffFrom(c *gin.Context) (order.Staff, bool) {
	p, ok := httpx.GetPrincipal(c)
	if !ok {
		return order.Staff{}, false
	}
	return order.Staff{ID: p.StaffID, Role: p.Role}, true
}

// createOrderHandler places a new order.
//
//	@Summary  Create order
//	@Tags     orders
//	@Accept   json
//	@Produce  json
//	@Param    order  body      order.CreateRequest  true  "order payload"
//	@Success  201    {object}  order.Detail
//	@Failure  404    {object}  HTTPError
//	@Failure  409    {object}  HTTPError
//	@Failure  422    {object}  HTTPError
//	@Router   /orders [post]
func createOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		detail, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, detail)
	}
}

// listOrdersHandler lists orders with optional filters.
//
//	@Summary  List orders
//	@Tags     orders
//	@Produce  json
//	@Param    status      query  string  false  "order status"
//	@Param    order_type  query  string  false  "order type"
//	@Param    start_date  query  string  false  "created at or after (RFC3339 or YYYY-MM-DD)"
//	@Param    end_date    query  string  false  "created at or before"
//	@Success  200  {array}  order.Order
//	@Router   /orders [get]
func listOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var f order.Filter
		if s := c.Query("status"); s != "" {
			f.Statuses = []order.Status{order.Status(s)}
		}
		f.OrderType = order.Type(c.Query("order_type"))
		var err error
		if f.From, err = parseDate(c.Query("start_date"), false); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad start_date"})
			return
		}
		if f.To, err = parseDate(c.Query("end_date"), true); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad end_date"})
			return
		}
		orders, err := svc.List(c.Request.Context(), f)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(orders), "data": orders})
	}
}

// parseDate accepts RFC3339 or a bare date; bare end dates snap to the
// end of that day.
func parseDate(s string, endOfDay bool) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, err
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Millisecond)
	}
	return t, nil
}

// getOrderHandler returns an order with its lines.
//
//	@Summary  Get order
//	@Tags     orders
//	@Produce  json
//	@Param    id   path      string  true  "order id"
//	@Success  200  {object}  order.Detail
//	@Failure  404  {object}  HTTPError
//	@Router   /orders/{id} [get]
func getOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// getOrderStatusHandler is the public status probe used by customers.
//
//	@Summary  Get order status
//	@Tags     orders
//	@Produce  json
//	@Param    id  path  string  true  "order id"
//	@Success  200  {object}  map[string]string
//	@Router   /orders/{id}/status [get]
func getOrderStatusHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"order_number": detail.Order.OrderNumber,
			"status":       detail.Order.Status,
		})
	}
}

// updateOrderHandler edits customer details and notes on a live order.
//
//	@Summary  Update order details
//	@Tags     orders
//	@Accept   json
//	@Produce  json
//	@Param    id     path      string                      true  "order id"
//	@Param    order  body      order.UpdateDetailsRequest  true  "fields to update"
//	@Success  200    {object}  order.Order
//	@Failure  409    {object}  HTTPError
//	@Router   /orders/{id} [put]
func updateOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.UpdateDetailsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		o, err := svc.UpdateDetails(c.Request.Context(), c.Param("id"), req)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// setOrderStatusHandler drives a status transition.
//
//	@Summary  Set order status
//	@Tags     orders
//	@Accept   json
//	@Produce  json
//	@Param    id      path      string                  true  "order id"
//	@Param    status  body      order.SetStatusRequest  true  "target status"
//	@Success  200     {object}  order.Order
//	@Failure  402     {object}  HTTPError
//	@Failure  403     {object}  HTTPError
//	@Failure  409     {object}  HTTPError
//	@Router   /orders/{id}/status [put]
func setOrderStatusHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, ok := staffFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "staff identity required"})
			return
		}
		var req order.SetStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		o, err := svc.SetStatus(c.Request.Context(), c.Param("id"), order.Status(req.Status), staff)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// cancelOrderHandler cancels a live order and frees its table.
//
//	@Summary  Cancel order
//	@Tags     orders
//	@Produce  json
//	@Param    id   path      string  true  "order id"
//	@Success  200  {object}  order.Order
//	@Failure  409  {object}  HTTPError
//	@Router   /orders/{id} [delete]
func cancelOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Cancel(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "order cancelled", "data": o})
	}
}

// orderByTableHandler returns the active order bound to a table.
//
//	@Summary  Active order for table
//	@Tags     orders
//	@Produce  json
//	@Param    tableId  path      string  true  "table id"
//	@Success  200      {object}  order.Detail
//	@Failure  404      {object}  HTTPError
//	@Router   /orders/table/{tableId} [get]
func orderByTableHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.GetActiveByTable(c.Request.Context(), c.Param("tableId"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// cashierOrdersHandler lists orders needing cashier attention.
//
//	@Summary  Cashier order queue
//	@Tags     cashier
//	@Produce  json
//	@Param    status  query   string  false  "filter to one status"
//	@Success  200     {array}  order.Order
//	@Router   /cashier/orders [get]
func cashierOrdersHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		f := order.Filter{Statuses: []order.Status{order.StatusAccepted, order.StatusReady}}
		if s := c.Query("status"); s != "" {
			f.Statuses = []order.Status{order.Status(s)}
		}
		orders, err := svc.List(c.Request.Context(), f)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(orders), "data": orders})
	}
}

// cashierOrderHandler returns the settlement view of one order.
//
//	@Summary  Cashier order detail
//	@Tags     cashier
//	@Produce  json
//	@Param    id   path      string  true  "order id"
//	@Success  200  {object}  order.CashierDetail
//	@Failure  404  {object}  HTTPError
//	@Router   /cashier/orders/{id} [get]
func cashierOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.CashierOrder(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// payOrderHandler records a settlement against an order.
//
//	@Summary  Record payment
//	@Tags     cashier
//	@Accept   json
//	@Produce  json
//	@Param    id       path      string            true  "order id"
//	@Param    payment  body      order.PayRequest  true  "payment payload"
//	@Success  201      {object}  payment.Payment
//	@Failure  403      {object}  HTTPError
//	@Failure  409      {object}  HTTPError
//	@Router   /cashier/orders/{id}/pay [post]
func payOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, ok := staffFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "staff identity required"})
			return
		}
		var req order.PayRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
			return
		}
		p, err := svc.RecordPayment(c.Request.Context(), c.Param("id"), req, staff)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, p)
	}
}

// closeOrderHandler completes a settled order and frees its table.
//
//	@Summary  Close order
//	@Tags     cashier
//	@Produce  json
//	@Param    id   path      string  true  "order id"
//	@Success  200  {object}  order.Order
//	@Failure  402  {object}  HTTPError
//	@Failure  409  {object}  HTTPError
//	@Router   /cashier/orders/{id}/close [post]
func closeOrderHandler(svc *order.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		staff, ok := staffFrom(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "staff identity required"})
			return
		}
		o, err := svc.Close(c.Request.Context(), c.Param("id"), staff)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// listPaymentsHandler is the reporting read over settlement events.
// Aggregation belongs to the summary service, not here.
//
//	@Summary  List payments by range
//	@Tags     cashier
//	@Produce  json
//	@Param    start_date  query  string  false  "created at or after"
//	@Param    end_date    query  string  false  "created at or before"
//	@Param    status      query  string  false  "payment status"
//	@Success  200  {array}  payment.Payment
//	@Router   /cashier/payments [get]
func listPaymentsHandler(payments payment.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		from, err := parseDate(c.Query("start_date"), false)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad start_date"})
			return
		}
		to, err := parseDate(c.Query("end_date"), true)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad end_date"})
			return
		}
		if to.IsZero() {
			to = time.Now()
		}
		out, err := payments.ListByRange(c.Request.Context(), from, to, c.Query("status"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(out), "data": out})
	}
}

// listTablesHandler lists the floor plan with live occupancy.
//
//	@Summary  List tables
//	@Tags     tables
//	@Produce  json
//	@Success  200  {array}  table.Table
//	@Router   /tables [get]
func listTablesHandler(tables table.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := tables.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(out), "data": out})
	}
}

// getTableHandler returns one table.
//
//	@Summary  Get table
//	@Tags     tables
//	@Produce  json
//	@Param    id   path      string  true  "table id"
//	@Success  200  {object}  table.Table
//	@Failure  404  {object}  HTTPError
//	@Router   /tables/{id} [get]
func getTableHandler(tables table.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := tables.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// listMenuHandler lists menu items.
//
//	@Summary  List menu
//	@Tags     menu
//	@Produce  json
//	@Param    available  query   bool  false  "only available items"
//	@Success  200  {array}  menu.Item
//	@Router   /menu [get]
func listMenuHandler(items menu.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := items.List(c.Request.Context(), c.Query("available") == "true")
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(out), "data": out})
	}
}
