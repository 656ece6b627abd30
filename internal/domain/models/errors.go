package models

import "github.com/pkg/errors"

var (
	ErrUnknownField = errors.New("unknown field")
	ErrInvalidValue = errors.New("invalid value")
)

func unknownField(entity, field string) error {
	return errors.Wrapf(ErrUnknownField, "%s has no field %q", entity, field)
}

func invalidValue(field, value string) error {
	return errors.Wrapf(ErrInvalidValue, "%q is not a valid %s", value, field)
}
