package models

import "errors"

// Custom errors
var (
	ErrUnknownVariant     = errors.New("unknown scoring variant")
	ErrUnknownChartPolicy = errors.New("unknown chart policy")
	ErrChartOpen          = errors.New("previous chart has not been closed")
	ErrChartClosed        = errors.New("chart already closed")
	ErrEmptyScorelines    = errors.New("no scorelines supplied")
)
