package fieldhash

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr error
	}{
		{"0", 0, nil},
		{"42", 42, nil},
		{"0x2a", 42, nil},
		{"0X2A", 0, ErrBadNumber},
		{"052", 0, ErrBadNumber},
		{"0b101", 0, ErrBadNumber},
		{"", 0, ErrBadNumber},
		{"-1", 0, ErrNotInField},
		{"forty", 0, ErrBadNumber},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, FromUint64(tt.want), got)
		})
	}
}

func TestFromBigIntRejectsUnreduced(t *testing.T) {
	m := Modulus()

	_, err := FromBigInt(m)
	require.ErrorIs(t, err, ErrNotInField)
	_, err = FromBigInt(new(big.Int).Add(m, big.NewInt(1)))
	require.ErrorIs(t, err, ErrNotInField)
	_, err = FromBigInt(nil)
	require.ErrorIs(t, err, ErrNotInField)

	top := new(big.Int).Sub(m, big.NewInt(1))
	e, err := FromBigInt(top)
	require.NoError(t, err)
	assert.Equal(t, 0, top.Cmp(BigInt(e)))
	assert.Equal(t, top.String(), String(e))

	_, err = Parse(m.String())
	require.ErrorIs(t, err, ErrNotInField)
}

func TestBytesRoundTrip(t *testing.T) {
	e := FromUint64(123456789)
	b := Bytes(e)
	require.Len(t, b, 32)

	got, err := FromBytes(b)
	require.NoError(t, err)
	assert.Equal(t, e, got)

	_, err = FromBytes(b[1:])
	require.ErrorIs(t, err, ErrNotInField)

	ones := make([]byte, 32)
	for i := range ones {
		ones[i] = 0xff
	}
	_, err = FromBytes(ones)
	require.ErrorIs(t, err, ErrNotInField)
}

func TestMiMC(t *testing.T) {
	a, b := FromUint64(1), FromUint64(2)

	assert.Equal(t, MiMC2(a, b), MiMC([]Element{a, b}))
	assert.Equal(t, MiMC2(a, b), MiMC2(a, b))
	assert.NotEqual(t, MiMC2(a, b), MiMC2(b, a))
	assert.NotEqual(t, MiMC([]Element{a, b}), MiMC([]Element{a, b, FromUint64(0)}))

	// outputs are canonical and so round trip through the checked helpers
	h := MiMC2(a, b)
	got, err := FromBigInt(BigInt(h))
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestElementJSON(t *testing.T) {
	e := FromUint64(42)
	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.Equal(t, `"42"`, string(data))

	unreduced := new(big.Int).Add(Modulus(), big.NewInt(5)).String()
	tests := []struct {
		in      string
		want    Element
		wantErr error
	}{
		{`"42"`, FromUint64(42), nil},
		{`42`, FromUint64(42), nil},
		{`"0x2a"`, FromUint64(42), nil},
		{`"` + unreduced + `"`, Element{}, ErrNotInField},
		{unreduced, Element{}, ErrNotInField},
		{`"-1"`, Element{}, ErrNotInField},
		{`"1e3"`, Element{}, ErrBadNumber},
		{`true`, Element{}, ErrBadNumber},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got Element
			err := json.Unmarshal([]byte(tt.in), &got)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	got := FromUint64(7)
	require.NoError(t, json.Unmarshal([]byte(`null`), &got))
	assert.Equal(t, FromUint64(7), got)
}

func TestElementCBOR(t *testing.T) {
	e := FromUint64(123456789)
	data, err := cbor.Marshal(e)
	require.NoError(t, err)
	// a 32 byte string holding the big endian value
	assert.Equal(t, []byte{0x58, 0x20}, data[:2])
	assert.Equal(t, Bytes(e), data[2:])

	var got Element
	require.NoError(t, cbor.Unmarshal(data, &got))
	assert.Equal(t, e, got)

	unreduced := new(big.Int).Add(Modulus(), big.NewInt(5)).FillBytes(make([]byte, 32))
	tests := []struct {
		name string
		raw  []byte
	}{
		{"unreduced", unreduced},
		{"short", []byte{1, 2, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := cbor.Marshal(tt.raw)
			require.NoError(t, err)
			err = cbor.Unmarshal(data, &got)
			require.ErrorIs(t, err, ErrNotInField)
		})
	}

	// limbs are not accepted in place of the byte string
	limbs, err := cbor.Marshal([4]uint64{1, 2, 3, 4})
	require.NoError(t, err)
	require.Error(t, cbor.Unmarshal(limbs, &got))
}
