package validator

import (
	"reflect"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"golang.org/x/xerrors"

	"github.com/x-xyz/gosdk/domain"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// IsValidAddress returns is an address valid or not
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.ToLower(checksum) == strings.ToLower(address)
}

func get() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("address", func(fl validator.FieldLevel) bool {
			if fl.Field().Kind() != reflect.String {
				return false
			}
			return IsValidAddress(fl.Field().String())
		})
	})
	return validate
}

// Validate checks struct tags, failures are wrapped in domain.ErrInvalidArgument
func Validate(i interface{}) error {
	if err := get().Struct(i); err != nil {
		return xerrors.Errorf("%s: %w", err.Error(), domain.ErrInvalidArgument)
	}
	return nil
}
