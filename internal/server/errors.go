package server

import "errors"

var (
	ErrEmptyRequest = errors.New("connection closed before a request line")
	ErrPageNotFound = errors.New("page not found")
)
