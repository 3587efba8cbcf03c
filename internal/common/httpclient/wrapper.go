package httpclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/catebi/go-tax-declaration/internal/common/metrics"
)

// RequestWrapper sends outbound requests with uniform logging and latency
// metrics for one upstream service.
type RequestWrapper struct {
	client      *resty.Client
	metrics     *metrics.Metrics
	serviceName string
	log         *zap.Logger
}

func NewRequestWrapper(client *resty.Client, m *metrics.Metrics, serviceName string, log *zap.Logger) *RequestWrapper {
	return &RequestWrapper{
		client:      client,
		metrics:     m,
		serviceName: serviceName,
		log:         log,
	}
}

func (w *RequestWrapper) DoRequest(ctx context.Context, method, url string, reqFunc func(*resty.Request) *resty.Request) (*resty.Response, error) {
	startTime := time.Now()

	logFields := []zap.Field{
		zap.String("service", w.serviceName),
		zap.String("url", url),
		zap.String("method", method),
	}

	req := w.client.R().SetContext(ctx)
	if reqFunc != nil {
		req = reqFunc(req)
	}

	var httpRes *resty.Response
	var err error

	switch method {
	case "GET":
		httpRes, err = req.Get(url)
	case "POST":
		httpRes, err = req.Post(url)
	default:
		return nil, fmt.Errorf("unsupported HTTP method: %s", method)
	}

	if err != nil {
		w.log.Warn("failed send request", append(logFields, zap.Error(err))...)
		return nil, fmt.Errorf("failed send request: %w", err)
	}

	if w.metrics != nil {
		w.metrics.ObserveUpstreamRequest(w.serviceName, method, httpRes.StatusCode(), time.Since(startTime))
	}

	logFields = append(logFields, zap.String("httpStatusCode", httpRes.Status()))

	if httpRes.StatusCode() < 200 || httpRes.StatusCode() >= 300 {
		w.log.Warn("upstream responded non-2xx", logFields...)
	} else {
		w.log.Debug("upstream request done", logFields...)
	}

	return httpRes, nil
}
