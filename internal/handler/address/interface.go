package address

import "github.com/gin-gonic/gin"

type IHandler interface {
	GetDepositAddress(c *gin.Context)
}
