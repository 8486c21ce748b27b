// Package dataset fetches the monthly temperature variance dataset over HTTP.
package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/couchcryptid/temperature-heatmap/internal/domain"
	"github.com/couchcryptid/temperature-heatmap/internal/observability"
)

// Client implements pipeline.Loader against a plain HTTP endpoint.
type Client struct {
	httpClient *http.Client
	maxBytes   int64
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a dataset client. Bodies larger than maxBytes are rejected.
func NewClient(timeout time.Duration, maxBytes int64, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxBytes: maxBytes,
		metrics:  metrics,
		logger:   logger,
	}
}

// Load issues a single GET for url and decodes the payload. It returns a
// *domain.TransferError for network and HTTP failures and a
// *domain.FormatError when the body is not a dataset.
func (c *Client) Load(ctx context.Context, url string) (domain.Dataset, error) {
	start := time.Now()
	defer func() { c.metrics.FetchDuration.Observe(time.Since(start).Seconds()) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Dataset{}, &domain.TransferError{URL: url, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Dataset{}, &domain.TransferError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Dataset{}, &domain.TransferError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", body),
		}
	}

	// One extra byte tells an exact-size body from an oversized one.
	limit := c.maxBytes
	if limit < math.MaxInt64 {
		limit++
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit))
	if err != nil {
		return domain.Dataset{}, &domain.TransferError{URL: url, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(body)) > c.maxBytes {
		return domain.Dataset{}, &domain.FormatError{Reason: fmt.Sprintf("payload exceeds %d bytes", c.maxBytes)}
	}

	ds, err := Decode(body)
	if err != nil {
		return domain.Dataset{}, err
	}

	c.metrics.RecordsLoaded.Add(float64(len(ds.Records)))
	c.logger.Debug("dataset loaded",
		"url", url,
		"bytes", len(body),
		"records", len(ds.Records),
		"base_temperature", ds.BaseTemperature,
	)
	return ds, nil
}

// payload mirrors the published JSON. Pointer fields distinguish missing
// keys from zero values.
type payload struct {
	BaseTemperature *float64            `json:"baseTemperature"`
	MonthlyVariance *[]domain.RawRecord `json:"monthlyVariance"`
}

// Decode parses a dataset document.
func Decode(data []byte) (domain.Dataset, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return domain.Dataset{}, &domain.FormatError{Reason: fmt.Sprintf("field %q has wrong type", typeErr.Field), Err: err}
		}
		return domain.Dataset{}, &domain.FormatError{Reason: "decode json", Err: err}
	}
	if p.BaseTemperature == nil {
		return domain.Dataset{}, &domain.FormatError{Reason: "missing baseTemperature"}
	}
	if p.MonthlyVariance == nil {
		return domain.Dataset{}, &domain.FormatError{Reason: "missing monthlyVariance"}
	}

	return domain.Dataset{
		BaseTemperature: *p.BaseTemperature,
		Records:         *p.MonthlyVariance,
	}, nil
}
