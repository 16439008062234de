package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"Dunklab/internal/calc/approach"
	"Dunklab/internal/calc/bodyweight"
	"Dunklab/internal/calc/dunk"
	"Dunklab/internal/calc/export"
	"Dunklab/internal/calc/fatigue"
	"Dunklab/internal/calc/potential"
	"Dunklab/internal/calc/reach"
	"Dunklab/internal/calc/report"
	"Dunklab/internal/calc/respond"
	"Dunklab/internal/calc/suite"
	"Dunklab/internal/calc/trajectory"
	"Dunklab/internal/calc/vertical"
	"Dunklab/internal/catalog"
	"Dunklab/internal/config"
	"Dunklab/internal/middleware"
	"Dunklab/internal/share"
	"Dunklab/pkg/logger"
	"Dunklab/pkg/metrics"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval = time.Minute
	limiterIdleTimeout   = 10 * time.Minute
)

func CORS(cfg *config.Config, router *mux.Router) http.Handler {
	return middleware.CORS(cfg.CORSOrigin, router)
}

func HandleList(ctx context.Context, router *mux.Router, cfg *config.Config, repo catalog.Repository, log logger.Logger) error {
	router.Use(middleware.RequestID, middleware.AccessLog(log), middleware.Metrics)

	calcs := suite.New()
	limiter := middleware.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	go limiter.Run(ctx, limiterSweepInterval, limiterIdleTimeout)

	api := router.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	tools := api.PathPrefix("/tools").Subrouter()
	tools.HandleFunc("/"+dunk.Slug+"/calc", (&dunk.Handler{}).Calc).Methods("POST")
	tools.HandleFunc("/"+vertical.Slug+"/calc", (&vertical.Handler{}).Calc).Methods("POST")
	tools.HandleFunc("/"+reach.Slug+"/calc", (&reach.Handler{}).Calc).Methods("POST")
	tools.HandleFunc("/"+approach.Slug+"/calc", (&approach.Handler{}).Calc).Methods("POST")
	tools.HandleFunc("/"+fatigue.Slug+"/calc", (&fatigue.Handler{}).Calc).Methods("POST")
	tools.HandleFunc("/"+potential.Slug+"/calc", (&potential.Handler{}).Calc).Methods("POST")
	tools.HandleFunc("/"+bodyweight.Slug+"/calc", (&bodyweight.Handler{}).Calc).Methods("POST")

	reportH := &report.Handler{Suite: calcs}
	exportH := &export.Handler{Suite: calcs}
	trajectoryH := &trajectory.Handler{Suite: calcs}
	tools.HandleFunc("/{slug}/report", reportH.Generate).Methods("POST")
	tools.HandleFunc("/{slug}/export", exportH.Export).Methods("POST")
	tools.HandleFunc("/{slug}/trajectory", trajectoryH.Draw).Methods("POST")

	if cfg.SharingEnabled() {
		signer, err := share.NewSigner(cfg.ShareSecret, cfg.ShareTTL())
		if err != nil {
			return fmt.Errorf("share signer: %w", err)
		}
		shareH := &share.Handler{Suite: calcs, Signer: signer, BaseURL: cfg.BaseURL}
		api.HandleFunc("/share/{slug}", shareH.Create).Methods("POST")
		api.HandleFunc("/shared/{token}", shareH.Resolve).Methods("GET")
	} else {
		log.Info(ctx, "share links disabled: share_secret is empty")
	}

	catalogH := &catalog.Handler{Repo: repo, BaseURL: cfg.BaseURL}
	api.HandleFunc("/calculators", catalogH.List).Methods("GET")
	api.HandleFunc("/calculators/{slug}", catalogH.Get).Methods("GET")
	router.HandleFunc("/sitemap.xml", catalogH.Sitemap).Methods("GET")
	router.HandleFunc("/robots.txt", catalogH.Robots).Methods("GET")

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods("GET")
	router.Handle("/metrics", promhttp.HandlerFor(metrics.GetRegistry(), promhttp.HandlerOpts{})).Methods("GET")
	return nil
}
