package domain

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrSlugTaken           = errors.New("application url already in use")
)
