package uplink

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"codeberg.org/mutker/motormon/internal/errors"
	"codeberg.org/mutker/motormon/internal/logger"
	"codeberg.org/mutker/motormon/internal/telemetry"
)

const (
	ErrInvalidConfig = errors.ErrorCode("uplink_invalid_config")
	ErrUploadFailed  = errors.ErrorCode("uplink_upload_failed")
	ErrBadStatus     = errors.ErrorCode("uplink_bad_status")
)

const requestTimeout = 10 * time.Second

type Config struct {
	URL      string
	APIKey   string
	Interval int
}

func (c Config) Validate() error {
	errFactory := errors.New()

	if c.URL == "" {
		return errFactory.WithMessage(ErrInvalidConfig, "upload URL is required")
	}
	if c.APIKey == "" {
		return errFactory.WithMessage(ErrInvalidConfig, "upload API key is required")
	}
	if c.Interval <= 0 {
		return errFactory.WithData(ErrInvalidConfig, c.Interval)
	}

	return nil
}

// Client pushes telemetry updates to a ThingSpeak-compatible channel:
// field1 carries the vibration RMS, field2 the fault status code.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: requestTimeout,
		},
	}, nil
}

func (c *Client) Send(ctx context.Context, record telemetry.Record) error {
	errFactory := errors.New()

	params := url.Values{}
	params.Set("api_key", c.cfg.APIKey)
	params.Set("field1", strconv.FormatFloat(record.RMS, 'f', 4, 64))
	params.Set("field2", strconv.Itoa(record.StatusCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL+"?"+params.Encode(), nil)
	if err != nil {
		return errFactory.Wrap(ErrUploadFailed, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errFactory.Wrap(ErrUploadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errFactory.WithData(ErrBadStatus, resp.StatusCode)
	}

	entry, err := io.ReadAll(io.LimitReader(resp.Body, 64))
	if err != nil {
		return errFactory.Wrap(ErrUploadFailed, err)
	}

	logger.Info().
		Str("entry", string(entry)).
		Float64("rms", record.RMS).
		Int("status_code", record.StatusCode).
		Msg("Telemetry uploaded")

	return nil
}

// Interval returns the configured upload period.
func (c *Client) Interval() time.Duration {
	return time.Duration(c.cfg.Interval) * time.Second
}

func (c *Client) String() string {
	return fmt.Sprintf("uplink{url: %s, interval: %ds}", c.cfg.URL, c.cfg.Interval)
}
