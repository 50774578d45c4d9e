package payload

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

const maxPayloadBytes = 1 << 20

func DecodePayload(r *http.Request, object any) (err error) {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxPayloadBytes))
	defer func() {
		errClose := r.Body.Close()
		if err == nil {
			err = errClose
		}
	}()

	decoder.DisallowUnknownFields()

	if err = decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}
	if decoder.More() {
		return errors.New("decoding json payload: unexpected data after object")
	}

	return nil
}
