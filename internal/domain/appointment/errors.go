package appointment

import (
	"errors"
	"fmt"
)

// ValidationError: entrada malformada na criação/edição de um agendamento.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s", e.Field, e.Reason)
}

// InvalidTransitionError: uso indevido da máquina de status.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s", e.From, e.To)
}

// InvalidPriceError: preço final informado não parseável ou não positivo.
type InvalidPriceError struct {
	Input string
}

func (e *InvalidPriceError) Error() string {
	return fmt.Sprintf("invalid price: %q", e.Input)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsInvalidTransition(err error) bool {
	var te *InvalidTransitionError
	return errors.As(err, &te)
}

func IsInvalidPrice(err error) bool {
	var pe *InvalidPriceError
	return errors.As(err, &pe)
}
