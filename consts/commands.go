package consts

// Command is an API command name sent in the Action block of the envelope.
//
// Values are taken from the Qantani documentation.
type Command string

const (
	CommandIdealGetBanks     Command = "IDEAL.GETBANKS"
	CommandIdealExecute      Command = "IDEAL.EXECUTE"
	CommandTransactionStatus Command = "TRANSACTIONSTATUS"
)

// Result element selectors, relative to the response root.
const (
	SelectorBanks       = "./Banks"
	SelectorResponse    = "./Response"
	SelectorTransaction = "./Transaction"
)
