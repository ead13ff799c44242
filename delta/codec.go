package delta

import (
	"errors"
	"fmt"

	"github.com/golang/snappy"
)

// ErrTrailingBytes is returned by Decode when the payload holds data past
// the end of the encoded Delta.
var ErrTrailingBytes = errors.New("delta: trailing bytes after message")

// Encode serializes d as msgpack and wraps it in a snappy block.
func Encode(d Delta) ([]byte, error) {
	raw, err := d.MarshalMsg(nil)
	if err != nil {
		return nil, fmt.Errorf("delta: marshal: %w", err)
	}

	return snappy.Encode(nil, raw), nil
}

// Decode reverses Encode.
func Decode(b []byte) (Delta, error) {
	raw, err := snappy.Decode(nil, b)
	if err != nil {
		return Delta{}, fmt.Errorf("delta: decompress: %w", err)
	}

	var d Delta
	rest, err := d.UnmarshalMsg(raw)
	if err != nil {
		return Delta{}, fmt.Errorf("delta: unmarshal: %w", err)
	}
	if len(rest) != 0 {
		return Delta{}, fmt.Errorf("%w: %d", ErrTrailingBytes, len(rest))
	}

	return d, nil
}
