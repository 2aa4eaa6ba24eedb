package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junctionlabs/junction-backend/internal/handler"
	"github.com/junctionlabs/junction-backend/internal/utils/config"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
	"github.com/junctionlabs/junction-backend/internal/view"
)

// anonymousPrincipal is the well-known anonymous identity; it may never
// custody assets.
const anonymousPrincipal = "2vxsx-fae"

// principalAuth extracts the authenticated principal established by the
// identity layer in front of this service. Anonymous or missing principals
// are rejected at the boundary.
func principalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal := c.GetHeader("X-Principal-ID")
		if principal == "" || principal == anonymousPrincipal {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				view.CreateResponse[any](nil, nil, "authenticated principal required"))
			return
		}

		c.Set("principal", principal)
		c.Next()
	}
}

func loadV1Routes(r *gin.Engine, h *handler.Handler, appConfig *config.AppConfig, logger *logger.Logger) {
	v1 := r.Group("/api/v1")

	assets := v1.Group("/assets", principalAuth())
	{
		assets.POST("/deposit", h.AssetHandler.Deposit)
		assets.POST("/withdraw", h.AssetHandler.Withdraw)
		assets.GET("/balances", h.AssetHandler.GetAllBalances)
		assets.GET("/balances/:symbol", h.AssetHandler.GetBalance)
	}

	swaps := v1.Group("/swaps")
	{
		swaps.POST("", principalAuth(), h.SwapHandler.CreateSwapRequest)
		swaps.POST("/execute", principalAuth(), h.SwapHandler.ExecuteSwap)
		swaps.GET("/pending", h.SwapHandler.ListPendingSwaps)
		swaps.GET("/:id", h.SwapHandler.GetSwapRequest)
	}

	addresses := v1.Group("/addresses", principalAuth())
	{
		addresses.GET("/:chain", h.AddressHandler.GetDepositAddress)
	}

	v1.GET("/health/db", h.HealthHandler.Database)

	// health check
	r.GET("/healthz", h.HealthHandler.Basic)
	r.GET("/metrics", h.MetricsHandler.Handler())
}
