package asset

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junctionlabs/junction-backend/internal/controller"
	"github.com/junctionlabs/junction-backend/internal/model"
	"github.com/junctionlabs/junction-backend/internal/utils/config"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
	"github.com/junctionlabs/junction-backend/internal/view"
)

type DepositRequest struct {
	Symbol string `json:"symbol" binding:"required"`
	Amount uint64 `json:"amount" binding:"required"`
	Chain  string `json:"chain" binding:"required"`
}

type WithdrawRequest struct {
	Symbol        string `json:"symbol" binding:"required"`
	Amount        uint64 `json:"amount" binding:"required"`
	TargetChain   string `json:"target_chain" binding:"required"`
	TargetAddress string `json:"target_address" binding:"required"`
}

type handler struct {
	controller controller.IController
	logger     *logger.Logger
	appConfig  *config.AppConfig
}

func New(controller controller.IController, logger *logger.Logger, appConfig *config.AppConfig) IHandler {
	return &handler{
		controller: controller,
		logger:     logger,
		appConfig:  appConfig,
	}
}

// Deposit godoc
// @Summary Deposit an asset
// @Description Credits a confirmed inbound transfer to the caller's custodial balance
// @id depositAsset
// @Tags Asset
// @Accept json
// @Produce json
// @Param request body DepositRequest true "Deposit parameters"
// @Success 200 {object} view.MessageResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /assets/deposit [post]
func (h *handler) Deposit(c *gin.Context) {
	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Deposit][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, "invalid request"))
		return
	}

	chain, err := model.ParseChain(req.Chain)
	if err != nil {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, "unrecognized chain"))
		return
	}

	user := c.GetString("principal")
	if err := h.controller.Deposit(user, req.Symbol, req.Amount, chain); err != nil {
		h.logger.Error("[Deposit][Deposit]", map[string]string{
			"error": err.Error(),
			"user":  user,
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, "failed to deposit"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any]("Deposit credited successfully", nil, ""))
}

// Withdraw godoc
// @Summary Withdraw an asset
// @Description Debits the caller's balance and hands the transfer to the target chain
// @id withdrawAsset
// @Tags Asset
// @Accept json
// @Produce json
// @Param request body WithdrawRequest true "Withdrawal parameters"
// @Success 200 {object} view.MessageResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /assets/withdraw [post]
func (h *handler) Withdraw(c *gin.Context) {
	var req WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[Withdraw][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, "invalid request"))
		return
	}

	chain, err := model.ParseChain(req.TargetChain)
	if err != nil {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, "unrecognized chain"))
		return
	}

	user := c.GetString("principal")
	receipt, err := h.controller.Withdraw(user, req.Symbol, req.Amount, chain, req.TargetAddress)
	if err != nil {
		h.logger.Error("[Withdraw][Withdraw]", map[string]string{
			"error": err.Error(),
			"user":  user,
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, "failed to withdraw"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(receipt, nil, "Withdrawal accepted"))
}

// GetBalance godoc
// @Summary Get one balance
// @Description Returns the caller's free balance for a single symbol
// @id getBalance
// @Tags Asset
// @Produce json
// @Param symbol path string true "Asset symbol"
// @Success 200 {object} view.MessageResponse
// @Router /assets/balances/{symbol} [get]
func (h *handler) GetBalance(c *gin.Context) {
	user := c.GetString("principal")
	symbol := c.Param("symbol")

	amount, err := h.controller.GetBalance(user, symbol)
	if err != nil {
		h.logger.Error("[GetBalance][GetBalance]", map[string]string{
			"error": err.Error(),
			"user":  user,
		})
		c.JSON(http.StatusInternalServerError, view.CreateResponse[any](nil, err, "failed to get balance"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(gin.H{
		"symbol": symbol,
		"amount": amount,
	}, nil, ""))
}

// GetAllBalances godoc
// @Summary Get all balances
// @Description Returns every symbol the caller has ever held, ordered by symbol
// @id getAllBalances
// @Tags Asset
// @Produce json
// @Success 200 {object} view.MessageResponse
// @Router /assets/balances [get]
func (h *handler) GetAllBalances(c *gin.Context) {
	user := c.GetString("principal")

	balances, err := h.controller.GetAllBalances(user)
	if err != nil {
		h.logger.Error("[GetAllBalances][GetAllBalances]", map[string]string{
			"error": err.Error(),
			"user":  user,
		})
		c.JSON(http.StatusInternalServerError, view.CreateResponse[any](nil, err, "failed to get balances"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(balances, nil, ""))
}
