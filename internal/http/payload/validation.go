package payload

import (
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// DecodeValidator decodes a JSON request body and runs its Validate method, if any.
type DecodeValidator struct{}

func (dv DecodeValidator) DecodeJSONPayload(r *http.Request, object any) error {
	if err := DecodePayload(r, object); err != nil {
		return err
	}
	return dv.validatePayload(object)
}

func (dv DecodeValidator) validatePayload(object any) error {
	t, ok := object.(validation.Validatable)
	if !ok {
		return nil
	}

	if err := t.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
