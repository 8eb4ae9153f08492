package storage

import "errors"

var (
	ErrAdminNotFound = errors.New("admin not found")
	ErrEventNotFound = errors.New("event not found")
)

var (
	ErrFileTooLarge = errors.New("file size exceeds limit")
	ErrFileNotFound = errors.New("file not found")
)
