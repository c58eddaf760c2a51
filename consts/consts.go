package consts

// Base URLs.
const (
	// DefaultBaseURL is the single Qantani API endpoint. Every command is a
	// POST to this URL; the command name travels inside the XML envelope.
	DefaultBaseURL = "https://www.qantanipayments.com/api/"
)

const (
	// FormFieldData is the form field carrying the XML envelope.
	FormFieldData = "data"

	ContentTypeForm = "application/x-www-form-urlencoded"
)

// Envelope constants.
const (
	ActionVersion = "1"
	StatusOK      = "OK"
	CurrencyEUR   = "EUR"
)
