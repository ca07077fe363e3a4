package db

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("db: empty connection URL")
	ErrFailedToParseURL   = errors.New("db: failed to parse connection URL")
	ErrConnectionFailed   = errors.New("db: failed to establish connection")
	ErrHealthcheckFailed  = errors.New("db: healthcheck failed")
)
