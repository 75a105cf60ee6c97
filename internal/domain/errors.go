package domain

import "errors"

var (
	ErrNotFound            = errors.New("resource not found")
	ErrUnauthorized        = errors.New("insufficient permission")
	ErrDuplicateEnterprise = errors.New("enterprise id already registered")
	ErrDuplicateDocument   = errors.New("document id already exists in enterprise")
	ErrInvalidPermission   = errors.New("permission level not grantable")
	ErrValidation          = errors.New("invalid input")
)
