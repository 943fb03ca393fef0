package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload converts an event payload into T. Payloads published on the
// MemoryBus are already T (or *T); payloads replayed from the dead-letter
// file arrive as raw JSON or generic maps and are decoded.
func DecodePayload[T any](input interface{}) (T, error) {
	var result T
	switch v := input.(type) {
	case T:
		return v, nil
	case *T:
		if v == nil {
			return result, fmt.Errorf("%s: nil %T", ErrMsgDecodePayload, v)
		}
		return *v, nil
	case nil:
		return result, fmt.Errorf("%s: empty payload", ErrMsgDecodePayload)
	case json.RawMessage:
		return result, unmarshalPayload(v, &result)
	case []byte:
		return result, unmarshalPayload(v, &result)
	}

	data, err := json.Marshal(input)
	if err != nil {
		return result, fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	return result, unmarshalPayload(data, &result)
}

func unmarshalPayload[T any](data []byte, out *T) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgDecodePayload, err)
	}
	return nil
}
