package domain

import "errors"

var (
	ErrMissingTenant  = errors.New("X-Tenant-Id header is required")
	ErrInvalidPayload = errors.New("amount (number) and status (string) are required")
	ErrOrderExists    = errors.New("order already exists")
)
