package asset

import "github.com/gin-gonic/gin"

type IHandler interface {
	Deposit(c *gin.Context)
	Withdraw(c *gin.Context)
	GetBalance(c *gin.Context)
	GetAllBalances(c *gin.Context)
}
