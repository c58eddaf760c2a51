// Package ideal holds the request and response models of the Qantani iDeal
// API.
package ideal

// Params is the per-call parameter mapping sent in the Parameters block of
// the envelope. Values are already stringified; order does not matter, the
// wire layer sorts keys.
type Params map[string]string

// Bank is one iDeal issuer returned by IDEAL.GETBANKS.
type Bank struct {
	ID   string
	Name string
}

// CreateTransactionRequest starts an iDeal payment (IDEAL.EXECUTE).
type CreateTransactionRequest struct {
	// Amount in EUR; sent as a two-decimal fixed string.
	Amount float64
	// BankID is the issuer id from Banks, e.g. "ASN_BANK".
	BankID      string
	Description string
	// ReturnURL is where the consumer lands after paying.
	ReturnURL string
}

// Transaction is the IDEAL.EXECUTE result. BankURL is where the consumer
// must be redirected to authorize the payment.
type Transaction struct {
	Status        string
	BankURL       string
	Code          string
	TransactionID string
	Acquirer      string
}

// TransactionStatusRequest checks any transaction (TRANSACTIONSTATUS).
type TransactionStatusRequest struct {
	TransactionID   string
	TransactionCode string
}

// TransactionStatus is the TRANSACTIONSTATUS result.
type TransactionStatus struct {
	Date        string
	ID          string
	Paid        YesNo
	Definitive  YesNo
	Consumer    Consumer
	MerchantID  string
	CurrentDate string
}

// Consumer carries the payer details of a transaction. Name and IBAN may be
// empty until the payment is definitive.
type Consumer struct {
	Name string
	IBAN string
	Bank string
}

// YesNo is the Y/N flag format used by the API.
type YesNo string

const (
	Yes YesNo = "Y"
	No  YesNo = "N"
)

func (y YesNo) Bool() bool { return y == Yes }

// Callback is the payload Qantani appends to the merchant return URL after a
// transaction. Checksum authenticates the other four fields.
type Callback struct {
	TransactionID   string
	TransactionCode string
	Status          string
	Salt            string
	Checksum        string
}
