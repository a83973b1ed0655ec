package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrPayloadType = errors.New("unexpected event payload")

// DecodePayload returns the payload as T. In-process publishers hand over T or *T
// directly; anything else (a map from a dead-letter replay, say) is re-decoded via JSON.
func DecodePayload[T any](input interface{}) (T, error) {
	var out T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v != nil {
			return *v, nil
		}
		return out, fmt.Errorf("%w: nil %T", ErrPayloadType, input)
	case nil:
		return out, fmt.Errorf("%w: nil", ErrPayloadType)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return out, fmt.Errorf("%w: %T: %v", ErrPayloadType, input, err)
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("%w: %T: %v", ErrPayloadType, input, err)
	}
	return out, nil
}
