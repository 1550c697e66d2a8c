package service

import "errors"

// Terminal error classes the handlers translate to HTTP statuses.
var (
	ErrToolNotFound      = errors.New("tool not found")
	ErrDuplicateToolName = errors.New("tool with this name already exists")
)
