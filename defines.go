package reqparse

import (
	"net/http"
	"net/url"
	"reflect"
)

// Fixed user-visible messages. These strings reach API clients verbatim.
const (
	MsgUnrecognizedParameter = "Unrecognized parameter"
	MsgMissingParameterFmt   = "Missing %s parameter"
	MsgInvalidChoiceFmt      = "%v is not a valid choice"
	MsgIntegerExpected       = "Integer type is expected"
	MsgBooleanExpected       = "Boolean type is expected"
	MsgFloatExpected         = "Float type is expected"
	MsgUUIDExpected          = "UUID is expected"
)

// Source name constants for built-in sources.
const (
	HTTPRequestSourceName   = "http-request-source"
	JSONByteSliceSourceName = "json-[]byte-source"
	ValuesSourceName        = "values-source"
	URLValuesSourceName     = "url-values-source"
	MultiMapSourceName      = "multimap-source"
	StringMapSourceName     = "stringmap-source"
)

// Mime Type constants for content types and encodings.
const (
	ContentEncodingUTF8          string = "UTF-8"
	ContentTypeApplicationJSON   string = "application/json"
	ContentTypeFormURLEncoded    string = "application/x-www-form-urlencoded"
	ContentTypeMultipartFormData string = "multipart/form-data"
	ContentTypeJSONWithCharset   string = ContentTypeApplicationJSON + "; charset=" + ContentEncodingUTF8
	DefaultMaxMemory             int64  = 10 << 20 // 10 MB
)

// reflect.TypeOf constants for source type lookups
var (
	HTTPRequestType   = reflect.TypeOf((*http.Request)(nil))
	JSONByteSliceType = reflect.TypeOf([]byte{})
	ValuesType        = reflect.TypeOf(Values{})
	URLValuesType     = reflect.TypeOf(url.Values{})
	MultiMapType      = reflect.TypeOf(map[string][]string{})
	StringMapType     = reflect.TypeOf(map[string]string{})
)
