package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

var ErrInvalidPayload error = errors.New("invalid payload")

type DecodeValidator struct{}

// DecodeJSONPayload decodes the request body into object and runs its Validate
// method when it has one. Unknown fields are rejected.
func (dv DecodeValidator) DecodeJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("%w: decoding json payload: %w", ErrInvalidPayload, err)
	}
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("%w: validating payload: %w", ErrInvalidPayload, err)
	}

	return nil
}
