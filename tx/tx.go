package tx

// A Transaction is an opaque text record. The chain orders and commits to
// transactions but never interprets their content.
type Transaction string

// String implements the `fmt.Stringer` interface for the Transaction type.
func (tx Transaction) String() string {
	return string(tx)
}

// Transactions defines a wrapper type around the []Transaction type.
type Transactions []Transaction
