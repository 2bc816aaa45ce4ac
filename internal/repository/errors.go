package repository

import (
	"errors"

	"gorm.io/gorm"
)

// Outcomes every gateway operation can produce. Handlers map these to
// response codes; anything else is a storage fault.
var (
	ErrNotFound     = errors.New("record not found")
	ErrDuplicateKey = errors.New("duplicate key")
)

// translate maps gorm errors to the repository sentinels. Requires the
// connection to be opened with TranslateError so unique-constraint
// violations look the same on every driver.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	default:
		return err
	}
}
