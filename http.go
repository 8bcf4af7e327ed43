package reqparse

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// HandlerOpts configures Handler.
type HandlerOpts struct {
	Strict  bool        // Report undeclared keys as unparsed
	Request RequestOpts // Passed to FromRequest
}

// HandlerFunc receives a request whose arguments parsed successfully.
type HandlerFunc func(w http.ResponseWriter, r *http.Request, ns *Namespace)

// Handler returns an http.HandlerFunc that parses every request with parser
// before calling fn. Requests that fail to parse are answered with WriteError
// and never reach fn.
//
// Failures are logged with the logger attached to the request context
// (zerolog.Ctx), so nothing is logged unless the caller set one up.
func Handler(parser *RequestParser, opts HandlerOpts, fn HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context())

		values, err := FromRequest(r, opts.Request)
		if err != nil {
			logger.Warn().Err(err).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("failed to extract request arguments")
			WriteError(w, err)
			return
		}

		ns, err := parser.Parse(values, opts.Strict)
		if err != nil {
			event := logger.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path)
			var invalid *InvalidError
			if errors.As(err, &invalid) {
				event = event.
					Strs("errors", invalid.Errors.Keys()).
					Strs("unparsed", invalid.Unparsed.Keys())
			}
			event.Msg("invalid request arguments")
			WriteError(w, err)
			return
		}

		fn(w, r, ns)
	}
}

// WriteError answers with a JSON body describing err. The status is 413
// Request Entity Too Large for ErrRequestBodyTooLarge and 400 Bad Request
// otherwise.
//
// An *InvalidError is rendered with its namespace, errors and unparsed
// fields. Any other error becomes {"message": err.Error()}.
func WriteError(w http.ResponseWriter, err error) {
	var payload any
	var invalid *InvalidError
	if errors.As(err, &invalid) {
		payload = invalid
	} else {
		payload = struct {
			Message string `json:"message"`
		}{err.Error()}
	}

	status := http.StatusBadRequest
	if errors.Is(err, ErrRequestBodyTooLarge) {
		status = http.StatusRequestEntityTooLarge
	}

	body, merr := json.Marshal(payload)
	if merr != nil {
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", ContentTypeJSONWithCharset)
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
