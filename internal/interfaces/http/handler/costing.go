package handler

import (
	"github.com/erp/costing/internal/application/report"
	"github.com/erp/costing/internal/infrastructure/logger"
	"github.com/erp/costing/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CostingHandler serves the costing engine's query endpoints. Snapshots
// arrive in the request body; the handler never persists anything.
type CostingHandler struct {
	BaseHandler
	service *report.CostingService
}

// NewCostingHandler creates a new CostingHandler
func NewCostingHandler(service *report.CostingService) *CostingHandler {
	return &CostingHandler{service: service}
}

// StockValue handles POST /reports/stock-value
func (h *CostingHandler) StockValue(c *gin.Context) {
	var req dto.StockValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	result, err := h.service.StockValue(c.Request.Context(), req.Snapshot, req.Options())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	logger.FromGinContext(c).Debug("stock value computed",
		zap.Int("items", len(result.Items)),
		zap.Int("diagnostics", len(result.Diagnostics)),
	)
	h.Success(c, result)
}

// SaleProfit handles POST /reports/sale-profit
func (h *CostingHandler) SaleProfit(c *gin.Context) {
	var req dto.SaleProfitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	result, err := h.service.ProfitOfSale(c.Request.Context(), req.Sale, req.Snapshot)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// InvoiceStatus handles POST /reports/invoice-status
func (h *CostingHandler) InvoiceStatus(c *gin.Context) {
	var req dto.InvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	status := h.service.InvoiceStatus(req.ID, req.TotalCost, req.PaidAmount)
	h.Success(c, status)
}

// AvailableSerials handles POST /reports/available-serials
func (h *CostingHandler) AvailableSerials(c *gin.Context) {
	var req dto.AvailableSerialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	serials, err := h.service.AvailableSerials(c.Request.Context(), req.ItemID, req.Purchases, req.Sales, req.ExcludeSaleID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, dto.AvailableSerialsResponse{ItemID: req.ItemID, Serials: serials})
}

// ResyncInvoices handles POST /reports/resync-invoices
func (h *CostingHandler) ResyncInvoices(c *gin.Context) {
	var req dto.ResyncInvoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindError(c, err)
		return
	}

	result := h.service.ResyncInvoices(c.Request.Context(), req.InvoiceIDs, req.Payments, req.Sales, req.Purchases)
	h.Success(c, result)
}
