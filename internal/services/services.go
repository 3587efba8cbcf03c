package services

import (
	"go.uber.org/zap"

	"github.com/catebi/go-tax-declaration/internal/common/metrics"
	"github.com/catebi/go-tax-declaration/internal/config"
	"github.com/catebi/go-tax-declaration/internal/repositories"
	"github.com/catebi/go-tax-declaration/internal/sessions"
)

type service struct {
	srv *Services
}

type Services struct {
	conf    config.Config
	log     *zap.Logger
	metrics *metrics.Metrics

	rateRepo     repositories.RateRepository
	workbookRepo repositories.WorkbookRepository
	sheetRepo    repositories.SheetRepository

	sessionStore *sessions.Store

	common service

	Normalizer  *normalizer
	Pipeline    *pipeline
	Aggregation *aggregation
	Template    *template
	Session     *session
}

func New(
	conf config.Config,
	log *zap.Logger,
	m *metrics.Metrics,
	rateRepo repositories.RateRepository,
	workbookRepo repositories.WorkbookRepository,
	sheetRepo repositories.SheetRepository,
	sessionStore *sessions.Store,
) *Services {
	srv := &Services{
		conf:         conf,
		log:          log,
		metrics:      m,
		rateRepo:     rateRepo,
		workbookRepo: workbookRepo,
		sheetRepo:    sheetRepo,
		sessionStore: sessionStore,
	}
	srv.common.srv = srv
	srv.Normalizer = (*normalizer)(&srv.common)
	srv.Pipeline = (*pipeline)(&srv.common)
	srv.Aggregation = (*aggregation)(&srv.common)
	srv.Template = (*template)(&srv.common)
	srv.Session = (*session)(&srv.common)

	return srv
}
