package reqparse

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
)

var (
	ErrFailedToParseForm = errors.New("failed to parse form data")
	ErrFailedToReadBody  = errors.New("failed to read request body")

	ErrRequestBodyTooLarge = errors.New("request body exceeds the size limit")
)

// RequestOpts tunes FromRequest.
type RequestOpts struct {
	// MaxMemory bounds multipart form parsing and JSON body reads. A JSON
	// body longer than MaxMemory fails with ErrRequestBodyTooLarge.
	// Zero means DefaultMaxMemory.
	MaxMemory int64
}

func (o RequestOpts) maxMemory() int64 {
	if o.MaxMemory <= 0 {
		return DefaultMaxMemory
	}
	return o.MaxMemory
}

// requestData collects the parts of one request that can carry parameters.
type requestData struct {
	request *http.Request
	opts    RequestOpts
}

// FromRequest merges every parameter carried by r into one Values: query
// string first, then the form body (urlencoded or multipart), then the
// members of a JSON body (see FromJSON). Values of a key found in several
// places are kept in that order.
//
// A JSON body is restored after reading so later handlers can read it again.
// Bodies of any other content type are ignored.
func FromRequest(r *http.Request, opts RequestOpts) (Values, error) {
	data := &requestData{request: r, opts: opts}

	values := data.queryValues()

	mediaType := data.mediaType()
	switch mediaType {
	case ContentTypeFormURLEncoded, ContentTypeMultipartFormData:
		form, err := data.formValues(mediaType)
		if err != nil {
			return nil, err
		}
		values.Merge(form)
	case ContentTypeApplicationJSON:
		body, err := data.jsonValues()
		if err != nil {
			return nil, err
		}
		values.Merge(body)
	}

	return values, nil
}

func (d *requestData) mediaType() string {
	contentType := d.request.Header.Get("Content-Type")
	if contentType == "" {
		return ""
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	return mediaType
}

func (d *requestData) queryValues() Values {
	if d.request.URL == nil {
		return Values{}
	}
	return Values(d.request.URL.Query())
}

func (d *requestData) formValues(mediaType string) (Values, error) {
	if mediaType == ContentTypeMultipartFormData {
		if err := d.request.ParseMultipartForm(d.opts.maxMemory()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
		}
		if d.request.MultipartForm == nil {
			return Values{}, nil
		}
		return Values(d.request.MultipartForm.Value).Clone(), nil
	}

	if err := d.request.ParseForm(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseForm, err)
	}
	return Values(d.request.PostForm).Clone(), nil
}

func (d *requestData) jsonValues() (Values, error) {
	if d.request.Body == nil || d.request.Body == http.NoBody {
		return Values{}, nil
	}

	limit := d.opts.maxMemory()
	body, err := io.ReadAll(io.LimitReader(d.request.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToReadBody, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: limit is %d bytes", ErrRequestBodyTooLarge, limit)
	}
	d.request.Body.Close()
	d.request.Body = io.NopCloser(bytes.NewReader(body))

	return FromJSON(body)
}
