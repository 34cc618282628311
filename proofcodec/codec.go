package proofcodec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

var (
	ErrDecode      = errors.New("proofcodec: malformed proof")
	ErrBadEncoding = errors.New("proofcodec: unknown encoding")
)

// Encoding selects the wire format used by Codec.Marshal and Codec.Unmarshal.
type Encoding string

const (
	EncodingCBOR Encoding = "cbor"
	EncodingJSON Encoding = "json"
)

type Codec struct {
	encoding Encoding
	encMode  cbor.EncMode
	decMode  cbor.DecMode
}

type Options struct {
	encoding Encoding
	decOpts  cbor.DecOptions
}

type Option func(*Options)

// WithEncoding sets the format of Marshal and Unmarshal. The default is CBOR.
func WithEncoding(e Encoding) Option {
	return func(opts *Options) { opts.encoding = e }
}

// WithDecOptions replaces the default decoding options, typically to tighten
// the size limits applied to untrusted input.
func WithDecOptions(o cbor.DecOptions) Option {
	return func(opts *Options) { opts.decOpts = o }
}

func NewDeterministicEncOpts() cbor.EncOptions {
	return cbor.CoreDetEncOptions()
}

// NewDeterministicDecOpts rejects duplicate map keys and indefinite lengths,
// neither of which the deterministic encoder produces.
func NewDeterministicDecOpts() cbor.DecOptions {
	return cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
	}
}

func NewCodec(opts ...Option) (Codec, error) {
	o := Options{
		encoding: EncodingCBOR,
		decOpts:  NewDeterministicDecOpts(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	switch o.encoding {
	case EncodingCBOR, EncodingJSON:
	default:
		return Codec{}, fmt.Errorf("%w: %q", ErrBadEncoding, o.encoding)
	}

	var err error
	c := Codec{encoding: o.encoding}
	c.encMode, err = NewDeterministicEncOpts().EncMode()
	if err != nil {
		return Codec{}, err
	}
	c.decMode, err = o.decOpts.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return c, nil
}

func (c Codec) Encoding() Encoding { return c.encoding }

// Marshal encodes v in the codec's encoding.
func (c Codec) Marshal(v any) ([]byte, error) {
	if c.encoding == EncodingJSON {
		return MarshalJSON(v)
	}
	return c.MarshalCBOR(v)
}

// Unmarshal decodes data, in the codec's encoding, into v.
func (c Codec) Unmarshal(data []byte, v any) error {
	if c.encoding == EncodingJSON {
		return UnmarshalJSON(data, v)
	}
	return c.UnmarshalInto(data, v)
}

func (c Codec) MarshalCBOR(v any) ([]byte, error) {
	return c.encMode.Marshal(v)
}

// UnmarshalInto decodes CBOR data into v, wrapping any failure in ErrDecode.
func (c Codec) UnmarshalInto(data []byte, v any) error {
	if err := c.decMode.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}

// MarshalJSON encodes v with the interchange field names.
func MarshalJSON(v any) ([]byte, error) {
	return json.Marshal(v)
}

// UnmarshalJSON decodes data into v, wrapping any failure in ErrDecode.
func UnmarshalJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nil
}
