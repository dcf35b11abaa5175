package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrRequestFailed       = errors.New("request failed")
	ErrNothingToDownload   = errors.New("nothing to download")
	ErrInvalidAddress      = errors.New("invalid adapter http address")
)
