package account

import "errors"

var (
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountCodeExists = errors.New("account code already exists for this company")
	ErrAccountInactive   = errors.New("account is deactivated")
	ErrInvalidSide       = errors.New("posting side must be debit or credit")
)
