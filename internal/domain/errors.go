package domain

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidDays     = errors.New("days out of range")
	ErrReportNotFound  = errors.New("aging report not found")
)
