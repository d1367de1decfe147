package client

import "errors"

var (
	ErrUsage          = errors.New("usage")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoPassword     = errors.New("no password provided")
)
