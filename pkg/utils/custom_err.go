package utils

import "errors"

var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrPlanNotFound      = errors.New("plan not found")
	ErrInvalidStatus     = errors.New("invalid shop status")
	ErrShopNotFound      = errors.New("shop not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrRecordNotFound    = errors.New("record not found")
	ErrInvalidPage       = errors.New("invalid page parameter")
	ErrInvalidPageSize   = errors.New("invalid page size parameter")
	ErrDatabaseError     = errors.New("database error")
)
