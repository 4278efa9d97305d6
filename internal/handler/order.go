package handler

import (
	"net/http"

	"circula/internal/dto"
	"circula/internal/middleware"
	"circula/internal/model"
	"circula/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService   service.OrderService
	paymentService service.PaymentService
}

func NewOrderHandler(orderService service.OrderService, paymentService service.PaymentService) *OrderHandler {
	return &OrderHandler{
		orderService:   orderService,
		paymentService: paymentService,
	}
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req dto.CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	order, err := h.orderService.Create(c.Request().Context(), middleware.UserID(c), req.ProductID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, dto.CreateOrderResponse{
		Message: "Order created successfully",
		ID:      order.ID,
	})
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := idParam(c, "orderId")
	if err != nil {
		return err
	}

	order, err := h.orderService.Detail(c.Request().Context(), orderID, middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, order)
}

// Pay settles an order with the submitted card. The card is validated first, so a
// malformed card answers 400 even when the item is already sold.
func (h *OrderHandler) Pay(c echo.Context) error {
	var req dto.PaymentRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	if err := h.paymentService.Pay(c.Request().Context(), middleware.UserID(c), req); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dto.PaymentResponse{
		Status:  model.PaymentSuccess,
		Message: "Payment processed successfully",
	})
}

func (h *OrderHandler) Purchased(c echo.Context) error {
	items, err := h.orderService.Purchased(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}

func (h *OrderHandler) Sold(c echo.Context) error {
	items, err := h.orderService.Sold(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, items)
}
