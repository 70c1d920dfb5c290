package domain

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyPaid        = errors.New("bill already paid")
	ErrDuplicateUser      = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
