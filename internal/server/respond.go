package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// errorResponse is the JSON body for every failed request.
type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	body := errorResponse{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	writeJSON(w, status, body)
}

// decodeAndValidate binds the request body into a typed struct and runs
// struct validation. The first violation is reported with the offending
// field's name.
func (s *Server) decodeAndValidate(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}

	if err := s.validate.Struct(dst); err != nil {
		var fieldErrors validator.ValidationErrors
		if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
			first := fieldErrors[0]
			return fmt.Errorf("invalid field %q: failed %q validation", first.Field(), first.Tag())
		}
		return err
	}

	return nil
}
