// Package validate decodes and validates request data through
// go-playground/validator.
package validate

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type Validate struct {
	Instance *validator.Validate
}

func New() *Validate {
	return &Validate{Instance: validator.New()}
}

const validationErrorPrefix = "validation error: "

// IsValidationError distinguishes failed struct validation from decode
// failures.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return len(msg) >= len(validationErrorPrefix) && msg[:len(validationErrorPrefix)] == validationErrorPrefix
}

// JSONBodyInto decodes a JSON body into destStructPtr and validates it.
func (v *Validate) JSONBodyInto(body io.Reader, destStructPtr any) error {
	if err := json.NewDecoder(body).Decode(destStructPtr); err != nil {
		return fmt.Errorf("error decoding JSON: %w", err)
	}
	return v.checkStruct(destStructPtr)
}

// JSONBytesInto decodes JSON bytes into destStructPtr and validates it.
func (v *Validate) JSONBytesInto(data []byte, destStructPtr any) error {
	if err := json.Unmarshal(data, destStructPtr); err != nil {
		return fmt.Errorf("error decoding JSON: %w", err)
	}
	return v.checkStruct(destStructPtr)
}

// URLSearchParamsInto parses a request's query parameters into destStructPtr
// (keyed by json tags) and validates it.
func (v *Validate) URLSearchParamsInto(r *http.Request, destStructPtr any) error {
	if err := parseURLValues(r.URL.Query(), destStructPtr); err != nil {
		return fmt.Errorf("error parsing URL parameters: %w", err)
	}
	return v.checkStruct(destStructPtr)
}

func (v *Validate) checkStruct(ptr any) error {
	if err := v.Instance.Struct(ptr); err != nil {
		return fmt.Errorf(validationErrorPrefix+"%w", err)
	}
	return nil
}
