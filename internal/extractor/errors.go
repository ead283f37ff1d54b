package extractor

import "errors"

var (
	ErrEmptyDescription = errors.New("extracted description is empty")
)
