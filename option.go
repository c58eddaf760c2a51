package go_qantani

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/stremovskyy/recorder"

	"github.com/stremovskyy/go-qantani/consts"
	"github.com/stremovskyy/go-qantani/log"
)

type Option func(*config) error

type config struct {
	baseURL  string
	merchant Merchant

	httpClient *http.Client
	logger     log.Logger
	logBodies  bool
	recorder   recorder.Recorder
}

func defaultConfig() config {
	return config{
		baseURL:    consts.DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     log.NewDefault(),
	}
}

// WithMerchant sets the credential triple used for every request.
func WithMerchant(m Merchant) Option {
	return func(cfg *config) error {
		if !m.complete() {
			return errors.New("merchant id, key and secret are all required")
		}
		cfg.merchant = m
		return nil
	}
}

// WithCredentials is shorthand for WithMerchant(NewMerchant(id, key, secret)).
func WithCredentials(id, key, secret string) Option {
	return WithMerchant(NewMerchant(id, key, secret))
}

// WithBaseURL overrides the API endpoint. Mostly useful for tests.
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) error {
		baseURL = strings.TrimSpace(baseURL)
		if baseURL == "" {
			return errors.New("base url is empty")
		}
		cfg.baseURL = baseURL
		return nil
	}
}

// WithHTTPClient sets a custom *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *config) error {
		if client == nil {
			return errors.New("http client is nil")
		}
		cfg.httpClient = client
		return nil
	}
}

// WithTimeout sets http client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *config) error {
		if timeout <= 0 {
			return errors.New("timeout must be > 0")
		}
		cfg.httpClient.Timeout = timeout
		return nil
	}
}

func WithLogger(logger log.Logger) Option {
	return func(cfg *config) error {
		if logger == nil {
			cfg.logger = log.NopLogger{}
			return nil
		}
		cfg.logger = logger
		return nil
	}
}

// WithLogHTTPBodies enables verbose request/response body logging for debugging.
//
// Disabled by default because bodies may contain sensitive data.
func WithLogHTTPBodies(enabled bool) Option {
	return func(cfg *config) error {
		cfg.logBodies = enabled
		return nil
	}
}

// WithRecorder attaches a recorder for request/response capture.
func WithRecorder(r recorder.Recorder) Option {
	return func(cfg *config) error {
		cfg.recorder = r
		return nil
	}
}
