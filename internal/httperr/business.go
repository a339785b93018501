package httperr

import "errors"

// BusinessError viaja desde los use cases hasta el handler con el mensaje
// exacto del contrato y el status que le corresponde.
type BusinessError struct {
	Status  int
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

func ErrBusiness(status int, message string) error {
	return BusinessError{Status: status, Message: message}
}

func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
