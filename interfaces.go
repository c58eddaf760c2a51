package go_qantani

import (
	"github.com/stremovskyy/go-qantani/ideal"
	"github.com/stremovskyy/go-qantani/log"
)

// Qantani is the main SDK interface, mirroring the top-level style used in go-nova.
type Qantani interface {
	Ideal() *IdealService

	CreateChecksum(params ideal.Params) string
	ValidateTransactionChecksum(checksum, transactionID, transactionCode, status, salt string) bool
	VerifyCallback(cb ideal.Callback) error

	SetLogLevel(level log.Level)
}

var _ Qantani = (*Client)(nil)
