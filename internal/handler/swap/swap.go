package swap

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/junctionlabs/junction-backend/internal/controller"
	"github.com/junctionlabs/junction-backend/internal/model"
	"github.com/junctionlabs/junction-backend/internal/utils/config"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
	"github.com/junctionlabs/junction-backend/internal/view"
)

type CreateSwapRequest struct {
	FromSymbol      string `json:"from_symbol" binding:"required"`
	FromAmount      uint64 `json:"from_amount" binding:"required"`
	ToSymbol        string `json:"to_symbol" binding:"required"`
	ToChain         string `json:"to_chain" binding:"required"`
	DurationSeconds uint64 `json:"duration_seconds" binding:"required"`
}

type ExecuteSwapRequest struct {
	IDA uint64 `json:"id_a" binding:"required"`
	IDB uint64 `json:"id_b" binding:"required"`
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

// CreateSwapRequest godoc
// @Summary Create a swap request
// @Description Escrows the offered asset and opens a swap request until its deadline
// @id createSwapRequest
// @Tags Swap
// @Accept json
// @Produce json
// @Param request body CreateSwapRequest true "Swap request parameters"
// @Success 200 {object} view.MessageResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /swaps [post]
func (h *handler) CreateSwapRequest(c *gin.Context) {
	var req CreateSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[CreateSwapRequest][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, "invalid request"))
		return
	}

	// validate req
	if err := validator.New().Struct(req); err != nil {
		h.logger.Error("[CreateSwapRequest][Validator]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, "invalid request"))
		return
	}

	toChain, err := model.ParseChain(req.ToChain)
	if err != nil {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, "unrecognized chain"))
		return
	}

	user := c.GetString("principal")
	duration := time.Duration(req.DurationSeconds) * time.Second

	id, err := h.controller.CreateSwapRequest(user, req.FromSymbol, req.FromAmount, req.ToSymbol, toChain, duration)
	if err != nil {
		h.logger.Error("[CreateSwapRequest][CreateSwapRequest]", map[string]string{
			"error": err.Error(),
			"user":  user,
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, "failed to create swap request"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(gin.H{"swap_id": id}, nil, "Swap request created"))
}

// ExecuteSwap godoc
// @Summary Execute two matched swap requests
// @Description Atomically settles two compatible swap requests
// @id executeSwap
// @Tags Swap
// @Accept json
// @Produce json
// @Param request body ExecuteSwapRequest true "The two request ids"
// @Success 200 {object} view.MessageResponse
// @Failure 400 {object} view.ErrorResponse
// @Failure 404 {object} view.ErrorResponse
// @Failure 410 {object} view.ErrorResponse
// @Router /swaps/execute [post]
func (h *handler) ExecuteSwap(c *gin.Context) {
	var req ExecuteSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("[ExecuteSwap][ShouldBindJSON]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, "invalid request"))
		return
	}

	if err := h.controller.ExecuteSwap(req.IDA, req.IDB); err != nil {
		h.logger.Error("[ExecuteSwap][ExecuteSwap]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, "failed to execute swap"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse[any]("Swap executed successfully", nil, ""))
}

// GetSwapRequest godoc
// @Summary Get a swap request
// @id getSwapRequest
// @Tags Swap
// @Produce json
// @Param id path int true "Swap request id"
// @Success 200 {object} view.MessageResponse
// @Failure 404 {object} view.ErrorResponse
// @Router /swaps/{id} [get]
func (h *handler) GetSwapRequest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, "invalid swap id"))
		return
	}

	swapRequest, err := h.controller.GetSwapRequest(id)
	if err != nil {
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, "failed to get swap request"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(swapRequest, nil, ""))
}

// ListPendingSwaps godoc
// @Summary List pending swap requests
// @Description Returns a snapshot of all open, non-expired swap requests
// @id listPendingSwaps
// @Tags Swap
// @Produce json
// @Success 200 {object} view.MessageResponse
// @Router /swaps/pending [get]
func (h *handler) ListPendingSwaps(c *gin.Context) {
	swapRequests, err := h.controller.ListPendingSwaps()
	if err != nil {
		h.logger.Error("[ListPendingSwaps][ListPendingSwaps]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, view.CreateResponse[any](nil, err, "failed to list pending swaps"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(swapRequests, nil, ""))
}
