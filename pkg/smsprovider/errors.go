package smsprovider

import (
	"errors"

	"github.com/twilio/twilio-go/client"
)

const ProviderTwilio = "twilio"

// Error is a rejection reported by the provider API. Error returns the provider's
// own message text unchanged.
type Error struct {
	Status  int
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func fromTwilioError(err error) error {
	var restErr *client.TwilioRestError
	if !errors.As(err, &restErr) {
		return err
	}

	message := restErr.Message
	if message == "" {
		message = restErr.Error()
	}

	return &Error{Status: restErr.Status, Code: restErr.Code, Message: message}
}
