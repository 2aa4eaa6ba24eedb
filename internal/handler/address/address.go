package address

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/junctionlabs/junction-backend/internal/controller"
	"github.com/junctionlabs/junction-backend/internal/model"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
	"github.com/junctionlabs/junction-backend/internal/view"
)

type handler struct {
	controller controller.IController
	logger     *logger.Logger
}

func New(controller controller.IController, logger *logger.Logger) IHandler {
	return &handler{
		controller: controller,
		logger:     logger,
	}
}

// GetDepositAddress godoc
// @Summary Get or generate a deposit address
// @Description Returns the caller's deterministic deposit address on the given chain
// @id getDepositAddress
// @Tags Address
// @Produce json
// @Param chain path string true "Chain tag (ICP, Bitcoin, Ethereum)"
// @Success 200 {object} view.MessageResponse
// @Failure 400 {object} view.ErrorResponse
// @Router /addresses/{chain} [get]
func (h *handler) GetDepositAddress(c *gin.Context) {
	chain, err := model.ParseChain(c.Param("chain"))
	if err != nil {
		c.JSON(http.StatusBadRequest, view.CreateResponse[any](nil, err, "unrecognized chain"))
		return
	}

	user := c.GetString("principal")
	addr, err := h.controller.GetDepositAddress(user, chain)
	if err != nil {
		h.logger.Error("[GetDepositAddress][GetDepositAddress]", map[string]string{
			"error": err.Error(),
			"user":  user,
		})
		c.JSON(view.ErrorStatus(err), view.CreateResponse[any](nil, err, "failed to get deposit address"))
		return
	}

	c.JSON(http.StatusOK, view.CreateResponse(gin.H{
		"chain":   chain,
		"address": addr,
	}, nil, ""))
}
