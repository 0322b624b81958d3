package statement

import (
	json "github.com/goccy/go-json"

	"github.com/seanpm2001/xapi/errors"
)

// Serialize renders any model entity as its JSON string. It is a thin,
// stateless wrapper over the entity's own MarshalJSON: every constructed
// value serializes without error, so a failure here always means a variant
// outside the supported set reached a dispatch.
func Serialize(v json.Marshaler) (string, error) {
	if v == nil {
		return "", errors.NilArgument("Serialize", "v")
	}
	data, err := v.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(data), nil
}
