package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/catebi/go-tax-declaration/internal/common"
	"github.com/catebi/go-tax-declaration/internal/common/httpclient"
	"github.com/catebi/go-tax-declaration/internal/common/metrics"
	"github.com/catebi/go-tax-declaration/internal/common/retry"
	"github.com/catebi/go-tax-declaration/internal/config"
	"github.com/catebi/go-tax-declaration/internal/models"
)

//go:generate mockgen -destination=mock/rates.go -package=mock github.com/catebi/go-tax-declaration/internal/repositories RateRepository

// RateRepository resolves the conversion rate of one unit of a currency into
// the base currency on a calendar date. Implementations are pure functions of
// (currency, date) except for transient upstream failure; memoization is the
// caller's concern, scoped to one pipeline run.
type RateRepository interface {
	Lookup(ctx context.Context, currency string, date time.Time) (models.Decimal, error)
}

const nbgCurrenciesPath = "/gw/api/ct/monetarypolicy/currencies/en/json/"

type nbgRate struct {
	wrapper *httpclient.RequestWrapper
	retryer retry.Retryer
	baseURL string
	metrics *metrics.Metrics
}

var _ RateRepository = (*nbgRate)(nil)

// NewNBGRateRepository builds the National Bank of Georgia rate client.
func NewNBGRateRepository(wrapper *httpclient.RequestWrapper, retryer retry.Retryer, cfg config.RateService, m *metrics.Metrics) RateRepository {
	return &nbgRate{
		wrapper: wrapper,
		retryer: retryer,
		baseURL: cfg.BaseURL,
		metrics: m,
	}
}

type nbgRateEntry struct {
	Code     string  `json:"code"`
	Quantity int     `json:"quantity"`
	Rate     float64 `json:"rate"`
}

type nbgRateDay struct {
	Date       string         `json:"date"`
	Currencies []nbgRateEntry `json:"currencies"`
}

// Lookup resolves the rate for one (currency, date) pair. The base currency
// always yields 1.0 without any network call.
func (r *nbgRate) Lookup(ctx context.Context, currency string, date time.Time) (models.Decimal, error) {
	if currency == models.BaseCurrency {
		return models.NewDecimalFromInt(1), nil
	}

	url := r.baseURL + nbgCurrenciesPath
	day := date.Format(common.DateFormatYYYYMMDD)

	var rate models.Decimal
	err := r.retryer.Do(ctx, func() error {
		r.metrics.IncRateLookup(currency)

		res, err := r.wrapper.DoRequest(ctx, http.MethodGet, url, func(req *resty.Request) *resty.Request {
			return req.SetQueryParams(map[string]string{
				"currencies": currency,
				"date":       day,
			})
		})
		if err != nil {
			// transport failure, worth another attempt
			return fmt.Errorf("%w: %w", common.ErrRateService, err)
		}

		switch {
		case res.StatusCode() >= 500:
			return fmt.Errorf("%w: upstream status %d", common.ErrRateService, res.StatusCode())
		case res.StatusCode() != http.StatusOK:
			return r.retryer.StopRetryWithErr(fmt.Errorf("%w: upstream status %d", common.ErrRateService, res.StatusCode()))
		}

		var days []nbgRateDay
		if err := json.Unmarshal(res.Body(), &days); err != nil {
			return r.retryer.StopRetryWithErr(fmt.Errorf("%w: decode response: %w", common.ErrRateService, err))
		}

		entry, found := matchRate(days, currency)
		if !found {
			return r.retryer.StopRetryWithErr(fmt.Errorf("%w: %s on %s", common.ErrRateUnavailable, currency, day))
		}

		rate = models.NewDecimalFromFloat(entry.Rate)
		return nil
	})
	if err != nil {
		return models.Decimal{}, err
	}

	return rate, nil
}

// matchRate picks the first entry matching the requested code; the upstream
// response carries at most one day with at most one currency per request.
func matchRate(days []nbgRateDay, currency string) (nbgRateEntry, bool) {
	for _, day := range days {
		for _, entry := range day.Currencies {
			if entry.Code == "" || entry.Code == currency {
				return entry, true
			}
		}
	}
	return nbgRateEntry{}, false
}
