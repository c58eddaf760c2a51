package ideal

import "fmt"

// The decode helpers turn the collapsed native values of the XML layer into
// typed models. They only read the shapes the API documents per command;
// anything else is reported as an error, never guessed around.

// DecodeBanks converts a collapsed ./Banks value into typed banks.
func DecodeBanks(v any) ([]Bank, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("banks: expected a list, got %T", v)
	}
	banks := make([]Bank, 0, len(items))
	for i, it := range items {
		m, ok := it.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("banks[%d]: expected a mapping, got %T", i, it)
		}
		banks = append(banks, Bank{ID: str(m, "Id"), Name: str(m, "Name")})
	}
	return banks, nil
}

// DecodeTransaction unwraps the Response entry of a collapsed ./Response
// value.
func DecodeTransaction(v any) (*Transaction, error) {
	m, err := unwrap(v, "Response")
	if err != nil {
		return nil, err
	}
	return &Transaction{
		Status:        str(m, "Status"),
		BankURL:       str(m, "BankURL"),
		Code:          str(m, "Code"),
		TransactionID: str(m, "TransactionID"),
		Acquirer:      str(m, "Acquirer"),
	}, nil
}

// DecodeTransactionStatus unwraps the Transaction entry of a collapsed
// ./Transaction value.
func DecodeTransactionStatus(v any) (*TransactionStatus, error) {
	m, err := unwrap(v, "Transaction")
	if err != nil {
		return nil, err
	}
	st := &TransactionStatus{
		Date:        str(m, "Date"),
		ID:          str(m, "ID"),
		Paid:        YesNo(str(m, "Paid")),
		Definitive:  YesNo(str(m, "Definitive")),
		MerchantID:  str(m, "MerchantID"),
		CurrentDate: str(m, "CurrentDate"),
	}
	if cm, ok := m["Consumer"].(map[string]any); ok {
		st.Consumer = Consumer{
			Name: str(cm, "Name"),
			IBAN: str(cm, "IBAN"),
			Bank: str(cm, "Bank"),
		}
	}
	return st, nil
}

func unwrap(v any, key string) (map[string]any, error) {
	outer, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a mapping, got %T", key, v)
	}
	inner, ok := outer[key].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: missing or malformed %s entry", key, key)
	}
	return inner, nil
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}
