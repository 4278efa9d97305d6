package handler

import (
	"bytes"
	"net/http"

	"circula/internal/dto"
	"circula/internal/model"
	"circula/internal/service"

	"github.com/labstack/echo/v4"
)

// AdminHandler serves the purchase review and dashboard pages.
type AdminHandler struct {
	purchaseService  service.PurchaseService
	dashboardService service.DashboardService
}

func NewAdminHandler(purchaseService service.PurchaseService, dashboardService service.DashboardService) *AdminHandler {
	return &AdminHandler{
		purchaseService:  purchaseService,
		dashboardService: dashboardService,
	}
}

func (h *AdminHandler) ListPurchases(c echo.Context) error {
	from, err := dateQuery(c, "dateFrom", false)
	if err != nil {
		return err
	}
	to, err := dateQuery(c, "dateTo", true)
	if err != nil {
		return err
	}

	purchases, err := h.purchaseService.List(c.Request().Context(), model.PurchaseFilter{
		Status:   model.PaymentStatus(c.QueryParam("status")),
		DateFrom: from,
		DateTo:   to,
		Search:   c.QueryParam("search"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, purchases)
}

func (h *AdminHandler) PurchaseMetrics(c echo.Context) error {
	metrics, err := h.purchaseService.Metrics(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, metrics)
}

func (h *AdminHandler) GetPurchase(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	purchase, err := h.purchaseService.Find(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, purchase)
}

func (h *AdminHandler) UpdatePurchaseStatus(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.PurchaseStatusRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	purchase, err := h.purchaseService.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, purchase)
}

func (h *AdminHandler) ExportPurchasesPDF(c echo.Context) error {
	from, err := dateQuery(c, "dateFrom", false)
	if err != nil {
		return err
	}
	to, err := dateQuery(c, "dateTo", true)
	if err != nil {
		return err
	}

	// render fully before writing so a failure still gets a JSON error
	var buf bytes.Buffer
	if err := h.purchaseService.ExportPDF(c.Request().Context(), &buf, from, to); err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="purchases.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}

func (h *AdminHandler) DashboardMetrics(c echo.Context) error {
	metrics, err := h.dashboardService.Metrics(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, metrics)
}

func (h *AdminHandler) DashboardStats(c echo.Context) error {
	stats, err := h.dashboardService.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) SalesData(c echo.Context) error {
	sales, err := h.dashboardService.SalesData(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sales)
}

func (h *AdminHandler) TopSellers(c echo.Context) error {
	sellers, err := h.dashboardService.TopSellers(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sellers)
}
