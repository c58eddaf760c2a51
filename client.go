package go_qantani

import (
	"context"
	"errors"
	"fmt"

	"github.com/stremovskyy/recorder"

	"github.com/stremovskyy/go-qantani/consts"
	"github.com/stremovskyy/go-qantani/ideal"
	"github.com/stremovskyy/go-qantani/internal/checksum"
	"github.com/stremovskyy/go-qantani/internal/envelope"
	"github.com/stremovskyy/go-qantani/internal/httpclient"
	"github.com/stremovskyy/go-qantani/log"
)

// Client is the main Qantani SDK client.
//
// It holds the merchant credential triple and keeps no other state: every
// call is one checksummed request/response round trip, so a Client is safe
// for concurrent use.
type Client struct {
	cfg config

	http *httpclient.Client

	ideal *IdealService
}

func NewClient(opts ...Option) (Qantani, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}
	if !cfg.merchant.complete() {
		return nil, errors.New("merchant credentials are not configured; use WithMerchant(...) or WithCredentials(...)")
	}

	c := &Client{cfg: cfg}
	c.http = httpclient.New(cfg.httpClient, cfg.logger, cfg.recorder, cfg.logBodies)
	c.ideal = &IdealService{c: c}
	return c, nil
}

// NewClientWithRecorder mirrors go-nova style constructor and attaches recorder.
func NewClientWithRecorder(rec recorder.Recorder, opts ...Option) (Qantani, error) {
	opts = append([]Option{WithRecorder(rec)}, opts...)
	return NewClient(opts...)
}

func (c *Client) Ideal() *IdealService { return c.ideal }

// SetLogLevel updates SDK log level when current logger supports it.
func (c *Client) SetLogLevel(level log.Level) {
	if c == nil || c.cfg.logger == nil {
		return
	}
	if l, ok := c.cfg.logger.(interface{ SetLevel(log.Level) }); ok {
		l.SetLevel(level)
	}
}

// CreateChecksum computes the request checksum for params with the merchant
// secret appended.
func (c *Client) CreateChecksum(params ideal.Params) string {
	return checksum.Create(params, c.cfg.merchant.Secret)
}

// ValidateTransactionChecksum verifies the checksum of a return-URL payload.
func (c *Client) ValidateTransactionChecksum(sum, transactionID, transactionCode, status, salt string) bool {
	return checksum.ValidateTransaction(sum, transactionID, transactionCode, status, salt)
}

// VerifyCallback authenticates a return-URL payload as a whole.
func (c *Client) VerifyCallback(cb ideal.Callback) error {
	ve := &ValidationError{}
	if cb.TransactionID == "" {
		ve.Add("transaction_id", "is required")
	}
	if cb.TransactionCode == "" {
		ve.Add("transaction_code", "is required")
	}
	if cb.Checksum == "" {
		ve.Add("checksum", "is required")
	}
	if ve.HasErrors() {
		return ve
	}
	if !checksum.ValidateTransaction(cb.Checksum, cb.TransactionID, cb.TransactionCode, cb.Status, cb.Salt) {
		ve.Add("checksum", "does not match")
		return ve
	}
	return nil
}

// call performs one envelope round trip and collapses the response element
// at selector into a native value. Returns (nil, nil) on a dry run.
func (c *Client) call(ctx context.Context, command consts.Command, params ideal.Params, selector string, runOpts []RunOption) (any, error) {
	sum := checksum.Create(params, c.cfg.merchant.Secret)
	body, err := envelope.Build(command, params, c.cfg.merchant.ID, c.cfg.merchant.Key, sum)
	if err != nil {
		return nil, err
	}
	if shouldDryRun(runOpts, command, c.cfg.baseURL, body) {
		return nil, nil
	}

	raw, err := c.http.PostForm(ctx, c.cfg.baseURL, body)
	if err != nil {
		return nil, wrapAPIError(err)
	}
	root, err := envelope.Parse(raw)
	if err != nil {
		return nil, wrapAPIError(err)
	}
	v, err := envelope.Result(root, selector)
	if err != nil {
		return nil, wrapAPIError(err)
	}
	return v, nil
}

func wrapAPIError(err error) error {
	if err == nil {
		return nil
	}
	var hs *httpclient.HTTPStatusError
	if errors.As(err, &hs) {
		return &APIError{Kind: KindRemote, StatusCode: hs.StatusCode}
	}
	var parseErr *envelope.ParseError
	if errors.As(err, &parseErr) {
		return &APIError{Kind: KindMalformedResponse, Description: parseErr.Error()}
	}
	var protoErr *envelope.ProtocolError
	if errors.As(err, &protoErr) {
		return &APIError{Kind: KindProtocolViolation, Description: protoErr.Reason}
	}
	var rejectErr *envelope.RejectError
	if errors.As(err, &rejectErr) {
		return &APIError{Kind: KindRejected, Description: rejectErr.Description}
	}
	return err
}

// =========================
// iDeal API
// =========================

type IdealService struct{ c *Client }

// Banks lists the iDeal issuers currently available for payments.
func (s *IdealService) Banks(ctx context.Context, runOpts ...RunOption) ([]ideal.Bank, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}

	v, err := s.c.call(ctx, consts.CommandIdealGetBanks, nil, consts.SelectorBanks, runOpts)
	if err != nil || v == nil {
		return nil, err
	}
	banks, err := ideal.DecodeBanks(v)
	if err != nil {
		return nil, &APIError{Kind: KindProtocolViolation, Description: err.Error()}
	}
	return banks, nil
}

// CreateTransaction initiates an iDeal payment and returns the bank redirect
// details. The consumer must be sent to Transaction.BankURL to authorize it.
func (s *IdealService) CreateTransaction(ctx context.Context, req *ideal.CreateTransactionRequest, runOpts ...RunOption) (*ideal.Transaction, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	if err := validateCreateTransaction(req); err != nil {
		return nil, err
	}

	params := ideal.Params{
		"Amount":      fmt.Sprintf("%.2f", req.Amount),
		"Currency":    consts.CurrencyEUR,
		"Bank":        req.BankID,
		"Description": req.Description,
		"Return":      req.ReturnURL,
	}
	v, err := s.c.call(ctx, consts.CommandIdealExecute, params, consts.SelectorResponse, runOpts)
	if err != nil || v == nil {
		return nil, err
	}
	tx, err := ideal.DecodeTransaction(v)
	if err != nil {
		return nil, &APIError{Kind: KindProtocolViolation, Description: err.Error()}
	}
	return tx, nil
}

// TransactionStatus checks the status of any transaction.
func (s *IdealService) TransactionStatus(ctx context.Context, req *ideal.TransactionStatusRequest, runOpts ...RunOption) (*ideal.TransactionStatus, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	if req == nil {
		return nil, &ValidationError{Fields: []FieldError{{Field: "request", Message: "is nil"}}}
	}
	if err := validateTransactionStatus(req); err != nil {
		return nil, err
	}

	params := ideal.Params{
		"TransactionID":   req.TransactionID,
		"TransactionCode": req.TransactionCode,
	}
	v, err := s.c.call(ctx, consts.CommandTransactionStatus, params, consts.SelectorTransaction, runOpts)
	if err != nil || v == nil {
		return nil, err
	}
	st, err := ideal.DecodeTransactionStatus(v)
	if err != nil {
		return nil, &APIError{Kind: KindProtocolViolation, Description: err.Error()}
	}
	return st, nil
}

// Do performs one raw command and returns the collapsed native value of the
// element at selector. Escape hatch for commands the typed wrappers do not
// cover.
func (s *IdealService) Do(ctx context.Context, command consts.Command, params ideal.Params, selector string, runOpts ...RunOption) (any, error) {
	if s == nil || s.c == nil {
		return nil, errors.New("client is nil")
	}
	return s.c.call(ctx, command, params, selector, runOpts)
}

// =========================
// Validation
// =========================

func validateCreateTransaction(req *ideal.CreateTransactionRequest) error {
	ve := &ValidationError{}
	if req.Amount <= 0 {
		ve.Add("amount", "must be > 0")
	}
	if req.BankID == "" {
		ve.Add("bank", "is required")
	}
	if req.Description == "" {
		ve.Add("description", "is required")
	}
	if req.ReturnURL == "" {
		ve.Add("return", "is required")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}

func validateTransactionStatus(req *ideal.TransactionStatusRequest) error {
	ve := &ValidationError{}
	if req.TransactionID == "" {
		ve.Add("transaction_id", "is required")
	}
	if req.TransactionCode == "" {
		ve.Add("transaction_code", "is required")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}
