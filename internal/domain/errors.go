package domain

import "errors"

var (
	ErrUnsupportedFormat        = errors.New("unsupported record format")
	ErrUnsupportedSchemaVersion = errors.New("unsupported records schema version")
)
