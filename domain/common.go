package domain

import (
	"errors"
)

var (
	MessageFailedBodyRequest    = "failed to process request body"
	MessageFailedProcessRequest = "failed to process request"

	ErrParseRecipeID      = errors.New("invalid recipe id")
	ErrStorageUnavailable = errors.New("storage backend not available")
)
