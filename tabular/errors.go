package tabular

import "errors"

// Sentinel errors returned by [Builder.Build].
var (
	ErrNoColumns         = errors.New("no columns")
	ErrTooManyColumns    = errors.New("too many columns")
	ErrInvalidWeight     = errors.New("invalid column weight")
	ErrInsufficientWidth = errors.New("insufficient width")
	ErrUnknownBorder     = errors.New("unknown border")
)
