package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/eucaby/reqparse"
	"github.com/eucaby/reqparse/args"
	"github.com/eucaby/reqparse/internal/logging"
)

// checkParams bundles the inputs of one check run so runCheck can be tested
// without a cobra command.
type checkParams struct {
	stdout io.Writer
	set    string
	query  string
	body   string
	opts   reqparse.HandlerOpts
}

func newCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <set> [query]",
		Short: "Parse a query string and JSON body with an argument set",
		Long: `Parse a query string and an optional JSON body with one of the argument
sets printed by 'reqparse list', the way the API would for an incoming request.
The sample request goes through the same handler chain as a live one.

On success the parsed namespace is printed. Otherwise the error payload is
printed and the command exits with status 2.`,
		Example: `  reqparse check activity 'type=incoming&offset=10'
  reqparse check register_device --json '{"device_key": "abc", "platform": "ios"}'
  reqparse check request_location 'email=a@b.com&foo=bar' --strict`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, positional []string) error {
			p := checkParams{
				stdout: cmd.OutOrStdout(),
				set:    positional[0],
				opts:   a.cfg.HandlerOptions(),
			}
			if len(positional) > 1 {
				p.query = positional[1]
			}
			p.body, _ = cmd.Flags().GetString("json")
			if cmd.Flags().Changed("strict") {
				p.opts.Strict, _ = cmd.Flags().GetBool("strict")
			}

			return runCheck(cmd.Context(), p)
		},
	}

	cmd.Flags().Bool("strict", false, "report undeclared parameters (default from config)")
	cmd.Flags().String("json", "", "JSON request body")

	return cmd
}

// runCheck serves a sample request through logging.Middleware and
// reqparse.Handler and prints the response body.
func runCheck(ctx context.Context, p checkParams) error {
	parser, err := args.Lookup(p.set)
	if err != nil {
		return err
	}

	req, err := newSampleRequest(ctx, p.query, p.body)
	if err != nil {
		return err
	}

	handler := logging.Middleware(reqparse.Handler(parser, p.opts, writeNamespace))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	logger := logging.WithComponent("check")
	logger.Debug().
		Str("set", p.set).
		Str("request_id", rec.Header().Get(logging.RequestIDHeader)).
		Bool("strict", p.opts.Strict).
		Int("status", rec.Code).
		Msg("sample request served")

	var out bytes.Buffer
	if err := json.Indent(&out, rec.Body.Bytes(), "", "  "); err != nil {
		out.Reset()
		out.Write(bytes.TrimSpace(rec.Body.Bytes()))
	}
	if _, err := fmt.Fprintln(p.stdout, out.String()); err != nil {
		return err
	}

	if rec.Code != http.StatusOK {
		return &ExitError{
			Code: ExitInvalidArguments,
			Err:  fmt.Errorf("%w: %s", reqparse.ErrInvalidArguments, http.StatusText(rec.Code)),
		}
	}
	return nil
}

// writeNamespace answers a request that parsed with {"namespace": ns}.
func writeNamespace(w http.ResponseWriter, _ *http.Request, ns *reqparse.Namespace) {
	body, err := json.Marshal(struct {
		Namespace *reqparse.Namespace `json:"namespace"`
	}{ns})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", reqparse.ContentTypeJSONWithCharset)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

func newSampleRequest(ctx context.Context, query, body string) (*http.Request, error) {
	target := "/"
	if query = strings.TrimPrefix(query, "?"); query != "" {
		target += "?" + query
	}

	method := http.MethodGet
	var reader io.Reader
	if body != "" {
		method = http.MethodPost
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build sample request: %w", err)
	}
	if body != "" {
		req.Header.Set("Content-Type", reqparse.ContentTypeApplicationJSON)
	}
	return req, nil
}
