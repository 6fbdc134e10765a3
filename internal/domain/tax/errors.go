package tax

import "errors"

var (
	ErrLiabilityNotFound  = errors.New("tax liability not found")
	ErrInvalidTransition  = errors.New("tax liability status cannot move backwards")
	ErrInvalidPeriod      = errors.New("invalid tax period")
	ErrNoBracketsProvided = errors.New("PAYE bracket table is empty")
)
