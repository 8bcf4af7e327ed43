package args

import (
	"errors"
	"fmt"
	"sort"

	"github.com/eucaby/reqparse"
)

var ErrUnknownArgumentSet = errors.New("unknown argument set")

// Names under which the endpoint parsers are listed.
const (
	RequestLocationName   = "request_location"
	NotifyLocationName    = "notify_location"
	ActivityName          = "activity"
	MessageDetailsName    = "message_details"
	RegisterDeviceName    = "register_device"
	DeactivateDevicesName = "deactivate_devices"
	SettingsName          = "settings"
	EmailHistoryName      = "email_history"
)

var sets = map[string]*reqparse.RequestParser{
	RequestLocationName:   RequestLocation,
	NotifyLocationName:    NotifyLocation,
	ActivityName:          Activity,
	MessageDetailsName:    MessageDetails,
	RegisterDeviceName:    RegisterDevice,
	DeactivateDevicesName: DeactivateDevices,
	SettingsName:          Settings,
	EmailHistoryName:      EmailHistory,
}

// Lookup returns the endpoint parser registered under name.
func Lookup(name string) (*reqparse.RequestParser, error) {
	p, ok := sets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownArgumentSet, name)
	}
	return p, nil
}

// Names returns the names of every endpoint parser, sorted.
func Names() []string {
	names := make([]string, 0, len(sets))
	for name := range sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
