package go_qantani

// Merchant holds the Qantani merchant credential triple.
//
// All three values come from the Qantani dashboard. The Secret never goes
// over the wire: it is only mixed into request checksums.
type Merchant struct {
	ID     string
	Key    string
	Secret string
}

func NewMerchant(id, key, secret string) Merchant {
	return Merchant{ID: id, Key: key, Secret: secret}
}

func (m Merchant) complete() bool {
	return m.ID != "" && m.Key != "" && m.Secret != ""
}
