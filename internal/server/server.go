package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/junctionlabs/junction-backend/internal/btcrpc"
	"github.com/junctionlabs/junction-backend/internal/chainaddr"
	"github.com/junctionlabs/junction-backend/internal/controller"
	"github.com/junctionlabs/junction-backend/internal/ledger"
	"github.com/junctionlabs/junction-backend/internal/monitoring"
	"github.com/junctionlabs/junction-backend/internal/store"
	pgstore "github.com/junctionlabs/junction-backend/internal/store/postgres"
	"github.com/junctionlabs/junction-backend/internal/swapengine"
	"github.com/junctionlabs/junction-backend/internal/transport/http"
	"github.com/junctionlabs/junction-backend/internal/utils/config"
	"github.com/junctionlabs/junction-backend/internal/utils/logger"

	_ "github.com/junctionlabs/junction-backend/docs"
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)
	s := store.New()

	custodyLedger := ledger.New(s.Balance, logger)
	engine := swapengine.New(db, s, custodyLedger, logger)

	addresses, err := chainaddr.New(db, s.ChainAddress, appConfig, logger)
	if err != nil {
		logger.Fatal("failed to init chain address registry", map[string]string{
			"error": err.Error(),
		})
		return
	}

	btcRPC := btcrpc.New(appConfig, logger)

	ctrl := controller.New(db, s, custodyLedger, engine, addresses, btcRPC, logger, appConfig)

	metricsRegistry := prometheus.NewRegistry()
	jobMetrics := monitoring.NewJobMetrics()
	jobMetrics.MustRegister(metricsRegistry)

	c := cron.New()

	c.AddFunc(appConfig.Swap.SweepSchedule, func() {
		start := time.Now()
		swept, err := ctrl.SweepExpiredSwaps()
		jobMetrics.ObserveRun("sweep_expired_swaps", start, err)
		if err != nil {
			logger.Error("[SweepExpiredSwaps] sweep failed", map[string]string{
				"error": err.Error(),
			})
			return
		}
		jobMetrics.AddSweptSwaps(swept)
	})

	c.AddFunc("@every 30s", func() {
		start := time.Now()
		err := ctrl.ProcessPendingWithdrawals()
		jobMetrics.ObserveRun("process_pending_withdrawals", start, err)
		if err != nil {
			logger.Error("[ProcessPendingWithdrawals] dispatch failed", map[string]string{
				"error": err.Error(),
			})
		}
	})

	c.Start()
	defer c.Stop()

	httpServer := http.NewHttpServer(appConfig, logger, ctrl, db, metricsRegistry)

	listenAddr := appConfig.ApiServer.ListenAddr
	if listenAddr == "" {
		listenAddr = ":8080"
	}

	if err := httpServer.Run(listenAddr); err != nil {
		logger.Fatal("http server stopped", map[string]string{
			"error": err.Error(),
		})
	}
}
