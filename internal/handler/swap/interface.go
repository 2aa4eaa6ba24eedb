package swap

import "github.com/gin-gonic/gin"

type IHandler interface {
	CreateSwapRequest(c *gin.Context)
	ExecuteSwap(c *gin.Context)
	GetSwapRequest(c *gin.Context)
	ListPendingSwaps(c *gin.Context)
}
