package canonicaljson

// Kind identifies the shape of a dynamic Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindString
	KindBytes
	KindSequence
	KindMap
	KindVariant
	KindAny
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindSequence:
		return "sequence"
	case KindMap:
		return "map"
	case KindVariant:
		return "variant"
	case KindAny:
		return "any"
	}
	return "invalid"
}

// Variant arities. Unit and newtype variants collapse per the canonical
// rules: a unit variant is its bare name, a newtype variant is its payload.
type variantArity uint8

const (
	unitArity variantArity = iota
	newtypeArity
	tupleArity
	structArity
)

// Value is an explicit tagged-union representation of a JSON-encodable
// value. It exists for two reasons: building values whose shape Go's type
// system cannot express directly (tagged variants), and assembling
// documents dynamically without defining Go types.
//
// The zero Value is null.
type Value struct {
	kind    Kind
	arity   variantArity
	boolv   bool
	intv    int64
	uintv   uint64
	str     string // string content, or variant name
	bytes   []byte
	seq     []Value  // sequence elements, or variant tuple payload
	members []Member // map members, or variant struct payload
	anyv    any
}

// Member is one key/value entry of a dynamic map. Input order is
// irrelevant: members are re-sorted into canonical order on encode.
type Member struct {
	Key   string
	Value Value
}

// Kind reports the shape of v.
func (v Value) Kind() Kind { return v.kind }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, boolv: b} }

// Int returns a signed integer value.
func Int(i int64) Value { return Value{kind: KindInt, intv: i} }

// Uint returns an unsigned integer value.
func Uint(u uint64) Value { return Value{kind: KindUint, uintv: u} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Rune returns the single-character string value for r.
func Rune(r rune) Value { return Value{kind: KindString, str: string(r)} }

// Bytes returns a byte-sequence value, encoded as a JSON array of numbers
// in the original byte order.
func Bytes(b []byte) Value { return Value{kind: KindBytes, bytes: b} }

// Sequence returns an ordered sequence value. Element order is preserved
// in the output.
func Sequence(elems ...Value) Value { return Value{kind: KindSequence, seq: elems} }

// Map returns a keyed-group value. Member order is irrelevant; the encoder
// sorts members canonically.
func Map(members ...Member) Value { return Value{kind: KindMap, members: members} }

// Any wraps an arbitrary Go value, encoded with the same reflection walk
// Marshal applies at the top level. It lets dynamic structure and plain Go
// values mix freely.
func Any(v any) Value { return Value{kind: KindAny, anyv: v} }

// UnitVariant returns a variant carrying no payload. It encodes as the
// bare string name, with no wrapper object.
func UnitVariant(name string) Value {
	return Value{kind: KindVariant, arity: unitArity, str: name}
}

// NewtypeVariant returns a variant carrying exactly one payload value.
// It encodes as the payload alone; the name adds no indirection layer.
func NewtypeVariant(name string, payload Value) Value {
	return Value{kind: KindVariant, arity: newtypeArity, str: name, seq: []Value{payload}}
}

// TupleVariant returns a variant carrying ordered payload elements.
// It encodes as {"name":[elems...]}.
func TupleVariant(name string, elems ...Value) Value {
	return Value{kind: KindVariant, arity: tupleArity, str: name, seq: elems}
}

// StructVariant returns a variant carrying named payload fields.
// It encodes as {"name":{members...}} with members in canonical order.
func StructVariant(name string, members ...Member) Value {
	return Value{kind: KindVariant, arity: structArity, str: name, members: members}
}
