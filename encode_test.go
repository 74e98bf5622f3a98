package canonicaljson

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalString_StructFieldOrdering(t *testing.T) {
	// Declaration order must not leak into the output.
	type record struct {
		Z uint8  `json:"z"`
		Y uint64 `json:"y"`
		X int    `json:"x"`
	}

	got, err := MarshalString(record{X: 1, Y: 23, Z: 10})
	require.NoError(t, err)
	assert.Equal(t, `{"x":1,"y":23,"z":10}`, got)
}

func TestMarshalString_StructTags(t *testing.T) {
	type tagged struct {
		Renamed  string `json:"renamed_field"`
		Skipped  string `json:"-"`
		Untagged string
		Empty    string `json:"empty,omitempty"`
		Kept     int    `json:"kept,omitempty"`
	}

	tests := []struct {
		name string
		in   tagged
		want string
	}{
		{
			name: "rename, skip and omitempty",
			in:   tagged{Renamed: "r", Skipped: "never", Untagged: "u"},
			want: `{"Untagged":"u","renamed_field":"r"}`,
		},
		{
			name: "omitempty keeps non-zero values",
			in:   tagged{Renamed: "r", Empty: "e", Kept: 3},
			want: `{"Untagged":"","empty":"e","kept":3,"renamed_field":"r"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarshalString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarshalString_EmbeddedStructs(t *testing.T) {
	type Base struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}
	type withEmbedded struct {
		Base
		Name string `json:"name"` // shadows the embedded field
		Tag  string `json:"tag"`
	}
	type withEmbeddedPtr struct {
		*Base
		Tag string `json:"tag"`
	}

	t.Run("embedded fields are flattened", func(t *testing.T) {
		got, err := MarshalString(withEmbedded{
			Base: Base{ID: 7, Name: "inner"},
			Name: "outer",
			Tag:  "t",
		})
		require.NoError(t, err)
		assert.Equal(t, `{"id":7,"name":"outer","tag":"t"}`, got)
	})

	t.Run("nil embedded pointer drops its members", func(t *testing.T) {
		got, err := MarshalString(withEmbeddedPtr{Tag: "t"})
		require.NoError(t, err)
		assert.Equal(t, `{"tag":"t"}`, got)
	})

	t.Run("non-nil embedded pointer is flattened", func(t *testing.T) {
		got, err := MarshalString(withEmbeddedPtr{Base: &Base{ID: 1, Name: "n"}, Tag: "t"})
		require.NoError(t, err)
		assert.Equal(t, `{"id":1,"name":"n","tag":"t"}`, got)
	})
}

func TestMarshalString_EmptyStruct(t *testing.T) {
	type empty struct{}
	type allSkipped struct {
		A string `json:"-"`
		b string // unexported fields never encode
	}

	got, err := MarshalString(empty{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, got)

	got, err = MarshalString(allSkipped{A: "x", b: "y"})
	require.NoError(t, err)
	assert.Equal(t, `{}`, got)
}

// signedPayload controls its own canonical form through the Marshaler
// capability.
type signedPayload struct {
	alg  string
	body []byte
}

func (p signedPayload) MarshalCanonicalJSON() (Value, error) {
	if p.alg == "" {
		return Value{}, errors.New("missing algorithm")
	}
	return Map(
		Member{Key: "alg", Value: String(p.alg)},
		Member{Key: "body", Value: Bytes(p.body)},
	), nil
}

var _ Marshaler = signedPayload{}

func TestMarshal_MarshalerInterface(t *testing.T) {
	t.Run("marshaler output is canonicalized", func(t *testing.T) {
		got, err := MarshalString(map[string]any{
			"payload": signedPayload{alg: "ed25519", body: []byte{1, 2}},
		})
		require.NoError(t, err)
		assert.Equal(t, `{"payload":{"alg":"ed25519","body":[1,2]}}`, got)
	})

	t.Run("marshaler failure is terminal", func(t *testing.T) {
		_, err := Marshal(signedPayload{})
		require.Error(t, err)

		var merr *MarshalerError
		require.ErrorAs(t, err, &merr)
		assert.ErrorContains(t, merr.Err, "missing algorithm")
	})
}

// upperCode implements encoding.TextMarshaler on its pointer receiver.
type upperCode struct {
	code string
}

func (u *upperCode) MarshalText() ([]byte, error) {
	return []byte(strings.ToUpper(u.code)), nil
}

func TestMarshal_PointerReceiverTextMarshaler(t *testing.T) {
	t.Run("pointer value", func(t *testing.T) {
		got, err := MarshalString(&upperCode{code: "ab"})
		require.NoError(t, err)
		assert.Equal(t, `"AB"`, got)
	})

	t.Run("addressable struct field", func(t *testing.T) {
		type doc struct {
			Code upperCode `json:"code"`
		}
		got, err := MarshalString(&doc{Code: upperCode{code: "ab"}})
		require.NoError(t, err)
		assert.Equal(t, `{"code":"AB"}`, got)
	})

	t.Run("slice element", func(t *testing.T) {
		got, err := MarshalString([]upperCode{{code: "a"}, {code: "b"}})
		require.NoError(t, err)
		assert.Equal(t, `["A","B"]`, got)
	})
}

func TestMarshal_PointerAndInterfaceIndirection(t *testing.T) {
	s := "v"
	ps := &s
	pps := &ps

	got, err := MarshalString(map[string]any{"a": pps})
	require.NoError(t, err)
	assert.Equal(t, `{"a":"v"}`, got)

	var nested any = map[string]any{"x": any(nil)}
	got, err = MarshalString(nested)
	require.NoError(t, err)
	assert.Equal(t, `{"x":null}`, got)
}
