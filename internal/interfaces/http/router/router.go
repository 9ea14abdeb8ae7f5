package router

import (
	"net/http"

	"github.com/erp/costing/internal/application/report"
	"github.com/erp/costing/internal/domain/costing"
	"github.com/erp/costing/internal/infrastructure/logger"
	"github.com/erp/costing/internal/interfaces/http/handler"
	"github.com/erp/costing/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Config holds router dependencies
type Config struct {
	Logger       *zap.Logger
	Service      *report.CostingService
	Env          string
	MaxBodyBytes int64
}

// New builds the gin engine with all middleware and routes
func New(cfg Config) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	registerValidations()

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(logger.GinMiddleware(cfg.Logger))
	if cfg.MaxBodyBytes > 0 {
		r.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	costingHandler := handler.NewCostingHandler(cfg.Service)
	v1 := r.Group("/api/v1")
	{
		reports := v1.Group("/reports")
		{
			reports.POST("/stock-value", costingHandler.StockValue)
			reports.POST("/sale-profit", costingHandler.SaleProfit)
			reports.POST("/invoice-status", costingHandler.InvoiceStatus)
			reports.POST("/available-serials", costingHandler.AvailableSerials)
			reports.POST("/resync-invoices", costingHandler.ResyncInvoices)
		}
	}

	return r
}

// registerValidations adds custom binding validations to gin's validator
func registerValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("discounttype", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || costing.DiscountType(value).IsValid()
	})
}
