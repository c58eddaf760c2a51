package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stremovskyy/recorder"

	"github.com/stremovskyy/go-qantani/consts"
	"github.com/stremovskyy/go-qantani/log"
)

// Client posts XML envelopes to the Qantani endpoint as a single form field.
// It is internal on purpose: the public API lives in the root package.
//
// One call is exactly one blocking round trip; nothing is retried.
type Client struct {
	httpClient *http.Client
	logger     log.Logger
	logBodies  bool
	recorder   recorder.Recorder
}

// New creates an internal HTTP client.
func New(httpClient *http.Client, logger log.Logger, rec recorder.Recorder, logBodies bool) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = log.NopLogger{}
	}
	return &Client{
		httpClient: httpClient,
		logger:     logger,
		logBodies:  logBodies,
		recorder:   rec,
	}
}

// PostForm sends body as the "data" form field and returns the raw response
// body. Any non-200 status becomes a *HTTPStatusError before the body is
// handed to the XML layer.
func (c *Client) PostForm(ctx context.Context, endpoint string, body []byte) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	requestID := nextRequestID()

	form := url.Values{consts.FormFieldData: {string(body)}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		c.recordError(ctx, requestID, err)
		return nil, err
	}
	req.Header.Set("Content-Type", consts.ContentTypeForm)

	c.logger.Debugf("[Qantani HTTP] request prepared: request_id=%s url=%s payload=%s", requestID, endpoint, logBody(body, c.logBodies))
	c.recordRequest(ctx, requestID, body)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordError(ctx, requestID, err)
		c.logger.Errorf("[Qantani HTTP] request failed: request_id=%s url=%s err=%v", requestID, endpoint, err)
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.recordError(ctx, requestID, err)
		return nil, err
	}
	c.recordResponse(ctx, requestID, raw)

	c.logger.Debugf("[Qantani HTTP] response received: request_id=%s url=%s status=%d response=%s", requestID, endpoint, resp.StatusCode, logBody(raw, c.logBodies))

	if resp.StatusCode != http.StatusOK {
		statusErr := &HTTPStatusError{StatusCode: resp.StatusCode, Body: raw}
		c.recordError(ctx, requestID, statusErr)
		return raw, statusErr
	}
	return raw, nil
}

// HTTPStatusError indicates a non-200 response.
type HTTPStatusError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPStatusError) Error() string {
	if e == nil {
		return "http status error"
	}
	if len(e.Body) == 0 {
		return fmt.Sprintf("unexpected status: %d", e.StatusCode)
	}
	// Limit in error string.
	b := e.Body
	if len(b) > 512 {
		b = b[:512]
	}
	return fmt.Sprintf("unexpected status: %d: %s", e.StatusCode, string(b))
}

func nextRequestID() string {
	return uuid.NewString()
}

func (c *Client) recordRequest(ctx context.Context, requestID string, body []byte) {
	if c == nil || c.recorder == nil {
		return
	}
	if err := c.recorder.RecordRequest(ctx, nil, requestID, body, nil); err != nil {
		c.logger.Warnf("[Qantani HTTP] cannot record request: %v", err)
	}
}

func (c *Client) recordResponse(ctx context.Context, requestID string, body []byte) {
	if c == nil || c.recorder == nil {
		return
	}
	if err := c.recorder.RecordResponse(ctx, nil, requestID, body, nil); err != nil {
		c.logger.Warnf("[Qantani HTTP] cannot record response: %v", err)
	}
}

func (c *Client) recordError(ctx context.Context, requestID string, err error) {
	if c == nil || c.recorder == nil || err == nil {
		return
	}
	if recErr := c.recorder.RecordError(ctx, nil, requestID, err, nil); recErr != nil {
		c.logger.Warnf("[Qantani HTTP] cannot record error: %v", recErr)
	}
}

func logBody(b []byte, verbose bool) string {
	if !verbose {
		return fmt.Sprintf("size=%d bytes", len(b))
	}
	return previewBytes(b)
}

func previewBytes(b []byte) string {
	if len(b) == 0 {
		return "<empty>"
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "<empty>"
	}
	if !utf8.ValidString(s) {
		return fmt.Sprintf("<binary size=%d bytes>", len(b))
	}
	return truncate(s, 4096)
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}
