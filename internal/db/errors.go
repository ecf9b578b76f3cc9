package db

import "errors"

// Domain-level database error sentinels.
var (
	ErrSentSongNotFound = errors.New("sent song not found")
)
