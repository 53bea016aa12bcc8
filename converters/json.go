package converters

import (
	"github.com/Station-Manager/errors"
	"github.com/aarondl/null/v8"
	boilertypes "github.com/aarondl/sqlboiler/v4/types"
	"github.com/goccy/go-json"
)

// EncodeJSON marshals v into a valid null.JSON.
func EncodeJSON[T any](v T) (null.JSON, error) {
	const op errors.Op = "converters.EncodeJSON"
	data, err := json.Marshal(v)
	if err != nil {
		return null.JSON{}, errors.New(op).Err(err)
	}
	return null.JSONFrom(data), nil
}

// DecodeJSON unmarshals j into a T. A null document yields the zero T.
func DecodeJSON[T any](j null.JSON) (T, error) {
	const op errors.Op = "converters.DecodeJSON"
	var v T
	if !j.Valid || len(j.JSON) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(j.JSON, &v); err != nil {
		return v, errors.New(op).Err(err)
	}
	return v, nil
}

// JSON is EncodeJSON for use as a step function; it panics on marshal failure.
func JSON[T any](v T) null.JSON { return Must(EncodeJSON[T])(v) }

// FromJSON is DecodeJSON for use as a step function; it panics on malformed documents.
func FromJSON[T any](j null.JSON) T { return Must(DecodeJSON[T])(j) }

// BoilerJSON marshals v into a sqlboiler JSON column value.
func BoilerJSON[T any](v T) boilertypes.JSON {
	return boilertypes.JSON(JSON(v).JSON)
}

// FromBoilerJSON unmarshals a sqlboiler JSON column value. An empty column yields the zero T.
func FromBoilerJSON[T any](j boilertypes.JSON) T {
	if len(j) == 0 {
		var zero T
		return zero
	}
	return FromJSON[T](null.JSONFrom(j))
}

// RoundTrip converts in into an Out by marshalling it to JSON and unmarshalling the document.
// The mapping is lossy when the two types do not share a JSON shape; prefer explicit steps for
// anything nested or misaligned.
func RoundTrip[In, Out any](in In) (Out, error) {
	const op errors.Op = "converters.RoundTrip"
	var out Out
	data, err := json.Marshal(in)
	if err != nil {
		return out, errors.New(op).Err(err)
	}
	if err = json.Unmarshal(data, &out); err != nil {
		return out, errors.New(op).Err(err)
	}
	return out, nil
}
