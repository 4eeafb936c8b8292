package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/clawdcat/mintboard/internal/domain/dashboard"
	"github.com/clawdcat/mintboard/internal/middleware"
	"github.com/clawdcat/mintboard/pkg/prometheus"
	"github.com/clawdcat/mintboard/pkg/router"
	"github.com/clawdcat/mintboard/pkg/ws"
	"github.com/clawdcat/mintboard/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startApi(*cli.Context) error {
	s.ctx = xcontext.WithDB(s.ctx, s.newDatabase())
	s.migrateDB()
	s.loadRedisClient()
	s.loadRepos()
	s.loadBlockchain()

	cfg := xcontext.Configs(s.ctx)
	s.hub = ws.NewHub()
	go s.hub.Run(s.ctx)

	s.loadDomains(s.hub)
	defer s.dashboardDomain.Close()
	s.streamDomain = dashboard.NewStreamDomain(s.hub, cfg.ApiServer.AllowedOrigins)

	go s.startPrometheus()

	go func() {
		if err := s.dashboardDomain.ResumeTracked(s.ctx); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot resume tracked txs: %v", err)
		}
	}()

	s.loadRouter()

	httpSrv := &http.Server{
		Addr:    cfg.ApiServer.Address(),
		Handler: s.router.Handler(cfg.ApiServer.AllowedOrigins),
	}

	go func() {
		<-s.ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			xcontext.Logger(s.ctx).Errorf("Cannot shutdown api server: %v", err)
		}
	}()

	xcontext.Logger(s.ctx).Infof("Starting server on port: %s", cfg.ApiServer.Port)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		xcontext.Logger(s.ctx).Errorf("An error occurs when running api server: %v", err)
		return err
	}

	xcontext.Logger(s.ctx).Infof("Server stop")
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.ctx)
	s.router.Before(middleware.WithStartTime())
	s.router.After(middleware.Logger())
	s.router.After(middleware.Prometheus())

	// Read-only views.
	{
		router.GET(s.router, "/getConfig", s.dashboardDomain.GetConfig)
		router.GET(s.router, "/getNavbar", s.dashboardDomain.Navbar)
		router.GET(s.router, "/getTokenStats", s.dashboardDomain.TokenStats)
		router.GET(s.router, "/getMintCard", s.dashboardDomain.MintCard)
		router.GET(s.router, "/getMintHistory", s.dashboardDomain.History)
	}

	// Wallet and mint actions.
	{
		router.POST(s.router, "/connectWallet", s.dashboardDomain.Connect)
		router.POST(s.router, "/disconnectWallet", s.dashboardDomain.Disconnect)
		router.POST(s.router, "/switchChain", s.dashboardDomain.SwitchChain)
		router.POST(s.router, "/setMintAmount", s.dashboardDomain.SetAmount)
		router.POST(s.router, "/mint", s.dashboardDomain.Mint)
	}

	s.router.Raw(http.MethodGet, "/ws", s.streamDomain.Serve)
}

func (s *srv) startPrometheus() {
	cfg := xcontext.Configs(s.ctx)
	httpSrv := &http.Server{
		Addr:    cfg.PrometheusServer.Address(),
		Handler: prometheus.NewHandler(),
	}

	xcontext.Logger(s.ctx).Infof("Starting prometheus on port: %s", cfg.PrometheusServer.Port)
	if err := httpSrv.ListenAndServe(); err != nil {
		xcontext.Logger(s.ctx).Errorf("Prometheus server stop: %v", err)
	}
}
