// Package args declares the request arguments of the Eucaby API endpoints:
// domain coercers, the messages sent back to mobile clients, the allowed
// choice sets and one RequestParser per endpoint.
package args

import (
	"github.com/eucaby/reqparse"
)

// Messages returned to API clients.
const (
	InvalidEmail            = "Invalid email"
	InvalidLatLng           = "Missing or invalid latlng parameter"
	MissingEmailUsername    = "Missing email or username parameters"
	MissingEmailUsernameReq = "Missing request_id, email or username parameters"
	InvalidActivityType     = "Activity type can be either outgoing, incoming, request or notification"
	InvalidMessageType      = "Message type can be either request or notification"
	InvalidPlatform         = "Platform can be either android or ios"
)

// Activity types.
const (
	ActivityOutgoing     = "outgoing"
	ActivityIncoming     = "incoming"
	ActivityRequest      = "request"
	ActivityNotification = "notification"
)

// Message types.
const (
	MessageRequest      = "request"
	MessageNotification = "notification"
)

// Device platforms.
const (
	PlatformAndroid = "android"
	PlatformIOS     = "ios"
)

// EmailSubscription is the only user setting key.
const EmailSubscription = "email_subscription"

const (
	// DefaultActivityLimit is the page size of the activity listing.
	DefaultActivityLimit = 200
	// DefaultHistoryLimit caps the email history lookup.
	DefaultHistoryLimit = 50
)

// Allowed values of the type and platform arguments.
var (
	ActivityChoices = []string{ActivityOutgoing, ActivityIncoming, ActivityRequest, ActivityNotification}
	MessageChoices  = []string{MessageRequest, MessageNotification}
	PlatformChoices = []string{PlatformAndroid, PlatformIOS}
)

///////////////////////////////////////////////////////////////////////////////
// Endpoint argument sets
///////////////////////////////////////////////////////////////////////////////

var (
	// RequestLocation parses a location request sent to a user or an email.
	RequestLocation = reqparse.MustRequestParser(
		reqparse.Argument{Name: "email", Type: Email, Help: InvalidEmail},
		reqparse.Argument{Name: "username", Type: reqparse.String, Help: MissingEmailUsername},
	)

	// NotifyLocation parses a location notification, optionally answering a
	// request.
	NotifyLocation = reqparse.MustRequestParser(
		reqparse.Argument{Name: "email", Type: Email, Help: InvalidEmail},
		reqparse.Argument{Name: "username", Type: reqparse.String},
		reqparse.Argument{Name: "request_id", Type: reqparse.String},
		reqparse.Argument{Name: "latlng", Type: LatLng, Required: true, Help: InvalidLatLng},
	)

	// Activity parses the paginated activity listing.
	Activity = reqparse.MustRequestParser(
		reqparse.Argument{
			Name:     "type",
			Required: true,
			Choices:  reqparse.Choices(ActivityChoices...),
			Help:     InvalidActivityType,
		},
		reqparse.Argument{Name: "offset", Type: reqparse.NonNegativeInt, Default: 0},
		reqparse.Argument{Name: "limit", Type: reqparse.NonNegativeInt, Default: DefaultActivityLimit},
	)

	// MessageDetails parses the lookup of a single request or notification.
	MessageDetails = reqparse.MustRequestParser(
		reqparse.Argument{
			Name:     "type",
			Required: true,
			Choices:  reqparse.Choices(MessageChoices...),
			Help:     InvalidMessageType,
		},
	)

	// RegisterDevice parses a push device registration.
	RegisterDevice = reqparse.MustRequestParser(
		reqparse.Argument{Name: "device_key", Type: reqparse.Trimmed(reqparse.String), Required: true},
		reqparse.Argument{
			Name:     "platform",
			Required: true,
			Choices:  reqparse.Choices(PlatformChoices...),
			Help:     InvalidPlatform,
		},
	)

	// DeactivateDevices parses the bulk deactivation of push devices.
	DeactivateDevices = reqparse.MustRequestParser(
		reqparse.Argument{Name: "device_key", Required: true, Action: reqparse.Append},
		reqparse.Argument{
			Name:    "platform",
			Choices: reqparse.Choices(PlatformChoices...),
			Help:    InvalidPlatform,
		},
	)

	// Settings parses an update of the user settings.
	Settings = reqparse.MustRequestParser(
		reqparse.Argument{Name: EmailSubscription, Type: reqparse.Bool},
	)

	// EmailHistory parses the autocomplete lookup of previously used emails.
	EmailHistory = reqparse.MustRequestParser(
		reqparse.Argument{Name: "query", Type: reqparse.Trimmed(reqparse.String)},
		reqparse.Argument{Name: "limit", Type: reqparse.NonNegativeInt, Default: DefaultHistoryLimit},
	)
)

// RequireAny reports message unless at least one of names holds a non-empty
// string in ns. Endpoints accepting either an email or a username use it
// after a successful parse.
func RequireAny(ns *reqparse.Namespace, message string, names ...string) error {
	for _, name := range names {
		if ns.String(name) != "" {
			return nil
		}
	}
	return reqparse.Invalid(message)
}
