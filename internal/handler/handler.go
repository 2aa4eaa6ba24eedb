package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/controller"
	"github.com/junctionlabs/junction-backend/internal/handler/address"
	"github.com/junctionlabs/junction-backend/internal/handler/asset"
	"github.com/junctionlabs/junction-backend/internal/handler/health"
	"github.com/junctionlabs/junction-backend/internal/handler/metrics"
	"github.com/junctionlabs/junction-backend/internal/handler/swap"
	"github.com/junctionlabs/junction-backend/internal/utils/config"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"
)

type Handler struct {
	AssetHandler   asset.IHandler
	SwapHandler    swap.IHandler
	AddressHandler address.IHandler
	HealthHandler  health.IHealthHandler
	MetricsHandler *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	ctrl controller.IController,
	db *gorm.DB,
	metricsRegistry *prometheus.Registry) *Handler {
	return &Handler{
		AssetHandler:   asset.New(ctrl, logger, appConfig),
		SwapHandler:    swap.New(ctrl, logger, appConfig),
		AddressHandler: address.New(ctrl, logger),
		HealthHandler:  health.New(appConfig, logger, db),
		MetricsHandler: metrics.NewMetricsHandler(metricsRegistry),
	}
}
