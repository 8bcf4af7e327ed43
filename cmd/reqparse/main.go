// Command reqparse runs the Eucaby endpoint argument sets against sample
// input, printing the parsed namespace or the error payload a client would
// receive.
//
//	reqparse list
//	reqparse check activity 'type=incoming&limit=20'
//	reqparse check notify_location --json '{"latlng": "52.5,13.4"}' --strict
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCommand().ExecuteContext(ctx)
	stop()

	if err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
