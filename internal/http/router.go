package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/node42/node42-backend/internal/http/handlers"
	httpMW "github.com/node42/node42-backend/internal/http/middleware"
	"github.com/node42/node42-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	CORSOrigins []string

	ConstraintHandler *httpH.ConstraintHandler
	JobHandler        *httpH.JobHandler
	MarketHandler     *httpH.MarketHandler
	CatalogHandler    *httpH.CatalogHandler
	KanoHandler       *httpH.KanoHandler
	CustomerHandler   *httpH.CustomerHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	if len(cfg.CORSOrigins) > 0 {
		r.Use(httpMW.CORS(cfg.CORSOrigins))
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.ConstraintHandler != nil {
			api.GET("/constraints", cfg.ConstraintHandler.GetConstraints)
		}

		if cfg.JobHandler != nil {
			api.GET("/core-jobs", cfg.JobHandler.GetCoreJobs)
			api.GET("/product-jobs", cfg.JobHandler.GetProductJobs)
		}

		if cfg.MarketHandler != nil {
			api.GET("/markets", cfg.MarketHandler.ListMarkets)
			api.GET("/markets/:id", cfg.MarketHandler.GetMarket)
		}

		if cfg.CatalogHandler != nil {
			api.GET("/companies", cfg.CatalogHandler.ListCompanies)
			api.GET("/commodities", cfg.CatalogHandler.ListCommodities)
			api.GET("/products", cfg.CatalogHandler.ListProducts)
			api.GET("/unspsc/classes", cfg.CatalogHandler.ListUnspscClasses)
			api.GET("/unspsc/commodities", cfg.CatalogHandler.ListUnspscCommodities)
		}

		if cfg.KanoHandler != nil {
			api.GET("/kano-ranges", cfg.KanoHandler.GetKanoRanges)
		}

		if cfg.CustomerHandler != nil {
			api.GET("/customers", cfg.CustomerHandler.ListCustomers)
		}
	}

	return r
}
