package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	commonerrors "github.com/Gerardo-HG/exercise-tracker-api-freeCodeCamp/internal/common/errors"
)

const multipartMemory = 1 << 20

// ReadFields returns the named body fields as strings. JSON bodies and
// url-encoded forms are both accepted; JSON numbers and booleans are
// rendered in their literal form and missing fields come back empty.
func ReadFields(r *http.Request, names ...string) (map[string]string, error) {
	out := make(map[string]string, len(names))

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		raw, err := decodeJSONObject(r)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			value, err := stringify(raw[name])
			if err != nil {
				return nil, commonerrors.ErrInvalidPayload.WithCause(fmt.Errorf("field %s: %w", name, err))
			}
			out[name] = value
		}
		return out, nil
	}

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return nil, bodyError(err)
		}
	} else if err := r.ParseForm(); err != nil {
		return nil, bodyError(err)
	}
	for _, name := range names {
		out[name] = r.PostForm.Get(name)
	}
	return out, nil
}

func decodeJSONObject(r *http.Request) (map[string]any, error) {
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, bodyError(err)
	}
	return raw, nil
}

func stringify(v any) (string, error) {
	switch value := v.(type) {
	case nil:
		return "", nil
	case string:
		return value, nil
	case json.Number:
		return value.String(), nil
	case bool:
		return strconv.FormatBool(value), nil
	default:
		return "", fmt.Errorf("unsupported value of type %T", v)
	}
}

func bodyError(err error) error {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return commonerrors.ErrRequestTooLarge.WithCause(err)
	}
	return commonerrors.ErrInvalidPayload.WithCause(err)
}
