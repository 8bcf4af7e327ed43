package args

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eucaby/reqparse"
)

func invalidError(t *testing.T, err error) *reqparse.InvalidError {
	t.Helper()
	var invalid *reqparse.InvalidError
	require.True(t, errors.As(err, &invalid), "expected *reqparse.InvalidError, got %v", err)
	return invalid
}

func TestRequestLocation(t *testing.T) {
	t.Run("Email", func(t *testing.T) {
		ns, err := RequestLocation.Parse(reqparse.Values{"email": {"a@b.com"}}, false)
		require.NoError(t, err)
		assert.Equal(t, "a@b.com", ns.String("email"))
		assert.True(t, ns.Has("username"))
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		_, err := RequestLocation.Parse(reqparse.Values{"email": {"nope"}, "username": {"bob"}}, false)
		invalid := invalidError(t, err)
		assert.Equal(t, map[string]string{"email": InvalidEmail}, invalid.Errors.Map())
		assert.Equal(t, "bob", invalid.Namespace.String("username"))
	})

	t.Run("RequireAny", func(t *testing.T) {
		ns, err := RequestLocation.Parse(reqparse.Values{}, false)
		require.NoError(t, err)

		err = RequireAny(ns, MissingEmailUsername, "email", "username")
		require.Error(t, err)
		assert.Equal(t, MissingEmailUsername, err.Error())

		ns, err = RequestLocation.Parse(reqparse.Values{"username": {"bob"}}, false)
		require.NoError(t, err)
		assert.NoError(t, RequireAny(ns, MissingEmailUsername, "email", "username"))
	})
}

func TestNotifyLocation(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		ns, err := NotifyLocation.Parse(reqparse.Values{
			"request_id": {"42"},
			"latlng":     {"52.5,13.4"},
		}, true)
		require.NoError(t, err)
		assert.Equal(t, []string{"email", "username", "request_id", "latlng"}, ns.Keys())
		assert.Equal(t, "52.5,13.4", ns.String("latlng"))
	})

	t.Run("MissingLatLng", func(t *testing.T) {
		_, err := NotifyLocation.Parse(reqparse.Values{"username": {"bob"}}, false)
		invalid := invalidError(t, err)
		assert.Equal(t, map[string]string{"latlng": InvalidLatLng}, invalid.Errors.Map())
	})

	t.Run("BadLatLngAndEmail", func(t *testing.T) {
		_, err := NotifyLocation.Parse(reqparse.Values{
			"email":  {"x@"},
			"latlng": {"37.4"},
		}, false)
		invalid := invalidError(t, err)
		assert.Equal(t, []string{"email", "latlng"}, invalid.Errors.Keys())
		msg, _ := invalid.Errors.Get("latlng")
		assert.Equal(t, InvalidLatLng, msg)
	})

	t.Run("Strict", func(t *testing.T) {
		_, err := NotifyLocation.Parse(reqparse.Values{
			"latlng":  {"0,0"},
			"message": {"hi"},
		}, true)
		invalid := invalidError(t, err)
		assert.Equal(t, 0, invalid.Errors.Len())
		assert.Equal(t, map[string]string{"message": reqparse.MsgUnrecognizedParameter}, invalid.Unparsed.Map())
	})
}

func TestActivity(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		ns, err := Activity.Parse(reqparse.Values{"type": {"outgoing"}}, false)
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"type": "outgoing", "offset": 0, "limit": DefaultActivityLimit}, ns.Map())
	})

	t.Run("InvalidType", func(t *testing.T) {
		ns, err := Activity.Parse(reqparse.Values{"type": {"bogus"}}, false)
		invalid := invalidError(t, err)
		assert.Equal(t, map[string]string{"type": InvalidActivityType}, invalid.Errors.Map())
		assert.Equal(t, map[string]any{"offset": 0, "limit": 200}, ns.Map())
	})

	t.Run("NegativePaging", func(t *testing.T) {
		_, err := Activity.Parse(reqparse.Values{
			"type":   {"incoming"},
			"offset": {"-1"},
			"limit":  {"abc"},
		}, false)
		invalid := invalidError(t, err)
		assert.Equal(t, map[string]string{
			"offset": reqparse.MsgIntegerExpected,
			"limit":  reqparse.MsgIntegerExpected,
		}, invalid.Errors.Map())
	})
}

func TestMessageDetails(t *testing.T) {
	ns, err := MessageDetails.Parse(reqparse.Values{"type": {"notification"}}, false)
	require.NoError(t, err)
	assert.Equal(t, "notification", ns.String("type"))

	_, err = MessageDetails.Parse(reqparse.Values{"type": {"outgoing"}}, false)
	invalid := invalidError(t, err)
	assert.Equal(t, map[string]string{"type": InvalidMessageType}, invalid.Errors.Map())
}

func TestRegisterDevice(t *testing.T) {
	ns, err := RegisterDevice.Parse(reqparse.Values{"device_key": {" abc "}, "platform": {"android"}}, false)
	require.NoError(t, err)
	assert.Equal(t, "abc", ns.String("device_key"))

	_, err = RegisterDevice.Parse(reqparse.Values{"platform": {"web"}}, false)
	invalid := invalidError(t, err)
	assert.Equal(t, map[string]string{
		"device_key": "Missing device_key parameter",
		"platform":   InvalidPlatform,
	}, invalid.Errors.Map())
}

func TestDeactivateDevices(t *testing.T) {
	ns, err := DeactivateDevices.Parse(reqparse.Values{"device_key": {"k1", "k2"}}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "k2"}, ns.Strings("device_key"))
	assert.True(t, ns.Has("platform"))
}

func TestSettings(t *testing.T) {
	ns, err := Settings.Parse(reqparse.Values{EmailSubscription: {"false"}}, true)
	require.NoError(t, err)
	assert.False(t, ns.Bool(EmailSubscription))

	_, err = Settings.Parse(reqparse.Values{EmailSubscription: {"sometimes"}}, false)
	invalid := invalidError(t, err)
	msg, _ := invalid.Errors.Get(EmailSubscription)
	assert.Equal(t, reqparse.MsgBooleanExpected, msg)
}

func TestEmailHistory(t *testing.T) {
	ns, err := EmailHistory.Parse(reqparse.Values{"query": {" ali "}}, false)
	require.NoError(t, err)
	assert.Equal(t, "ali", ns.String("query"))
	assert.Equal(t, DefaultHistoryLimit, ns.Int("limit"))
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			p, err := Lookup(name)
			require.NoError(t, err)
			assert.NotEmpty(t, p.Arguments())
		})
	}

	_, err := Lookup("nope")
	assert.ErrorIs(t, err, ErrUnknownArgumentSet)

	assert.Equal(t, []string{
		ActivityName, DeactivateDevicesName, EmailHistoryName, MessageDetailsName,
		NotifyLocationName, RegisterDeviceName, RequestLocationName, SettingsName,
	}, Names())
}
