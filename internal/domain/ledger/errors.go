package ledger

import "errors"

var (
	ErrUnbalancedTransaction = errors.New("transaction debits and credits are not equal")
	ErrEmptyTransaction      = errors.New("transaction has no lines")
	ErrLineBothSides         = errors.New("ledger line must carry exactly one of debit or credit")
	ErrNonPositiveAmount     = errors.New("ledger line amount must be positive")
	ErrTransactionNotFound   = errors.New("transaction not found")
	ErrUnknownPaymentMethod  = errors.New("payment method must be cash or bank")
)
