package utils

import "errors"

var (
	ErrPoiNotFound      = errors.New("poi not found")
	ErrImageNotFound    = errors.New("image not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrAccountNotFound  = errors.New("account not found")

	ErrEmailAlreadyExists = errors.New("email address is already registered")
	ErrCategoryExists     = errors.New("category already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrUploadFailed = errors.New("blob upload failed")
	ErrDeleteFailed = errors.New("blob delete failed")

	ErrDatabaseError = errors.New("database error")
)
