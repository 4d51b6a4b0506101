package repository

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Repository errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrFarmerNotFound    = errors.New("farmer not found")
	ErrBrokerNotFound    = errors.New("broker not found")
	ErrLivestockNotFound = errors.New("livestock not found")
	ErrTokenNotFound     = errors.New("token not found")
	ErrTokenExpired      = errors.New("token expired")
	ErrDuplicateKey      = errors.New("duplicate key")
)

// isDuplicateKey reports whether err is a unique-constraint violation.
// gorm translates these when TranslateError is on; the pq check covers
// connections where it is not.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
