package eventlog

import (
	"sync"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/types"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate
var once sync.Once

func getValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

func validateOptions(opts *Options) error {
	const op errors.Op = "eventlog.validateOptions"
	if err := getValidator().Struct(opts); err != nil {
		return errors.New(op).Err(err).Msg(errMsgOptionsInvalid)
	}
	return nil
}

func validateConfig(cfg *types.LoggingConfig) error {
	const op errors.Op = "eventlog.validateConfig"
	if cfg == nil {
		return errors.New(op).Msg(errMsgNilConfig)
	}
	if err := getValidator().Struct(cfg); err != nil {
		return errors.New(op).Err(err).Msg(errMsgConfigInvalid)
	}
	return nil
}
