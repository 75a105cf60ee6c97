package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docvault/internal/config"
	"docvault/internal/handler"
	"docvault/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	jwtCfg config.JWTConfig,
	enterpriseH *handler.EnterpriseHandler,
	documentH *handler.DocumentHandler,
	accessH *handler.AccessHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())

	// Health checks and metrics
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Auth(jwtCfg))

	enterprises := v1.Group("/enterprises")
	enterprises.POST("", enterpriseH.Register)
	enterprises.GET("/:id", enterpriseH.Lookup)

	documents := enterprises.Group("/:id/documents")
	documents.POST("", documentH.Create)
	documents.GET("", documentH.List)
	documents.GET("/:docID", documentH.Get)
	documents.PUT("/:docID", documentH.Update)
	documents.DELETE("/:docID", documentH.Delete)

	documents.POST("/:docID/access", accessH.RecordAccess)
	documents.POST("/:docID/grants", accessH.Grant)
	documents.GET("/:docID/grants", accessH.ListGrants)
	documents.DELETE("/:docID/grants/:user", accessH.Revoke)
	documents.GET("/:docID/audit", accessH.ListAuditTrail)
	documents.GET("/:docID/audit/:seq", accessH.GetAuditEntry)

	return r
}
