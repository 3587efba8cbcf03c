package main

import (
	"flag"
	"log"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/catebi/go-tax-declaration/internal/common/graceful"
	"github.com/catebi/go-tax-declaration/internal/common/httpclient"
	commonlog "github.com/catebi/go-tax-declaration/internal/common/log"
	"github.com/catebi/go-tax-declaration/internal/common/metrics"
	"github.com/catebi/go-tax-declaration/internal/common/retry"
	"github.com/catebi/go-tax-declaration/internal/config"
	"github.com/catebi/go-tax-declaration/internal/deliveries/http"
	"github.com/catebi/go-tax-declaration/internal/models"
	"github.com/catebi/go-tax-declaration/internal/repositories"
	"github.com/catebi/go-tax-declaration/internal/services"
	"github.com/catebi/go-tax-declaration/internal/sessions"
)

func main() {
	configPath := flag.String("config", "config.json", "path to the json config file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := commonlog.New(conf.App.Env, conf.App.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	restyClient := resty.New().SetTimeout(conf.RateService.Timeout)
	rateWrapper := httpclient.NewRequestWrapper(restyClient, m, "nbg", logger)
	retryer := retry.NewExponentialBackOff(conf.RateService.ExponentialBackoff)

	rateRepo := repositories.NewNBGRateRepository(rateWrapper, retryer, conf.RateService, m)
	workbookRepo := repositories.NewWorkbookRepository()
	sheetRepo := repositories.NewGoogleSheetRepository(conf.GoogleSheets)

	initialState := models.StateAwaitingLanguage
	if conf.Session.SkipLanguageSelection {
		initialState = models.StateAwaitingTemplateRequest
	}
	sessionStore := sessions.NewStore(initialState)

	srv := services.New(conf, logger, m, rateRepo, workbookRepo, sheetRepo, sessionStore)

	httpServer := http.NewHTTPServer(conf, logger, registry, srv.Session)

	var (
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)
	starters = append(starters, httpServer.Start())
	stoppers = append(stoppers, httpServer.Stop())

	logger.Info("starting http server",
		zap.String("app", conf.App.Name),
		zap.Int("port", conf.App.HTTPPort),
	)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(conf.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	logger.Info("http server stopped!")
}
