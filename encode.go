package canonicaljson

import (
	"bytes"
	"encoding"
	"math/big"
	"reflect"
	"slices"
	"strconv"
)

var (
	marshalerType     = reflect.TypeOf((*Marshaler)(nil)).Elem()
	textMarshalerType = reflect.TypeOf((*encoding.TextMarshaler)(nil)).Elem()
	valueType         = reflect.TypeOf((*Value)(nil)).Elem()
	bigIntType        = reflect.TypeOf((*big.Int)(nil)).Elem()
	bigFloatType      = reflect.TypeOf((*big.Float)(nil)).Elem()
	bigRatType        = reflect.TypeOf((*big.Rat)(nil)).Elem()
)

// encodeState accumulates the document for one encode call. Keyed-group
// member fragments are rendered at the tail of buf, copied out, and the
// buffer is truncated back, so one buffer serves the whole recursion.
type encodeState struct {
	buf []byte
}

func (e *encodeState) marshal(v any) error {
	if v == nil {
		e.buf = append(e.buf, "null"...)
		return nil
	}
	return e.encode(reflect.ValueOf(v))
}

func (e *encodeState) encode(rv reflect.Value) error {
	if !rv.IsValid() {
		e.buf = append(e.buf, "null"...)
		return nil
	}

	t := rv.Type()
	switch t {
	case valueType:
		return e.encodeDynamic(rv.Interface().(Value))
	case bigIntType:
		// Arbitrary-width integers render through decimal string
		// conversion; big.Int is always integral.
		bi := rv.Interface().(big.Int)
		e.buf = append(e.buf, bi.String()...)
		return nil
	case bigFloatType, bigRatType:
		return errFloat(t)
	}
	if t.Kind() == reflect.Pointer {
		switch t.Elem() {
		case valueType, bigIntType, bigFloatType, bigRatType:
			if rv.IsNil() {
				e.buf = append(e.buf, "null"...)
				return nil
			}
			return e.encode(rv.Elem())
		}
	}

	if t.Implements(marshalerType) {
		return e.encodeMarshaler(rv)
	}
	if t.Implements(textMarshalerType) {
		return e.encodeTextMarshaler(rv)
	}
	if rv.CanAddr() {
		// Pointer-receiver marshalers still apply to addressable
		// values, the way encoding/json takes Addr.
		pt := reflect.PointerTo(t)
		if pt.Implements(marshalerType) {
			return e.encodeMarshaler(rv.Addr())
		}
		if pt.Implements(textMarshalerType) {
			return e.encodeTextMarshaler(rv.Addr())
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		if rv.Bool() {
			e.buf = append(e.buf, "true"...)
		} else {
			e.buf = append(e.buf, "false"...)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		e.buf = strconv.AppendInt(e.buf, rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		e.buf = strconv.AppendUint(e.buf, rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return errFloat(t)
	case reflect.String:
		return e.appendString(rv.String())
	case reflect.Interface, reflect.Pointer:
		if rv.IsNil() {
			e.buf = append(e.buf, "null"...)
			return nil
		}
		return e.encode(rv.Elem())
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			e.encodeBytes(rv.Bytes())
			return nil
		}
		return e.encodeSequence(rv)
	case reflect.Array:
		return e.encodeSequence(rv)
	case reflect.Map:
		return e.encodeMap(rv)
	case reflect.Struct:
		return e.encodeStruct(rv)
	default:
		// Chan, Func, Complex, UnsafePointer: no canonical shape.
		return errUnsupported(t)
	}
	return nil
}

func (e *encodeState) encodeMarshaler(rv reflect.Value) error {
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		e.buf = append(e.buf, "null"...)
		return nil
	}
	val, err := rv.Interface().(Marshaler).MarshalCanonicalJSON()
	if err != nil {
		return &MarshalerError{GoType: rv.Type(), Err: err}
	}
	return e.encodeDynamic(val)
}

func (e *encodeState) encodeTextMarshaler(rv reflect.Value) error {
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		e.buf = append(e.buf, "null"...)
		return nil
	}
	text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
	if err != nil {
		return &MarshalerError{GoType: rv.Type(), Err: err}
	}
	return e.appendString(string(text))
}

// encodeBytes emits a byte sequence as a JSON array of numbers, one element
// per byte in original order. Base64 would leave the canonical grammar.
func (e *encodeState) encodeBytes(b []byte) {
	e.buf = append(e.buf, '[')
	for i, c := range b {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		e.buf = strconv.AppendUint(e.buf, uint64(c), 10)
	}
	e.buf = append(e.buf, ']')
}

// encodeSequence emits a slice or array in input order. Only keyed-group
// members are reordered, never sequence elements.
func (e *encodeState) encodeSequence(rv reflect.Value) error {
	e.buf = append(e.buf, '[')
	for i := 0; i < rv.Len(); i++ {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		if err := e.encode(rv.Index(i)); err != nil {
			return err
		}
	}
	e.buf = append(e.buf, ']')
	return nil
}

func (e *encodeState) encodeMap(rv reflect.Value) error {
	if rv.Len() == 0 {
		e.buf = append(e.buf, "{}"...)
		return nil
	}
	frags := make([][]byte, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		start := len(e.buf)
		if err := e.appendMapKey(iter.Key()); err != nil {
			return err
		}
		e.buf = append(e.buf, ':')
		if err := e.encode(iter.Value()); err != nil {
			return err
		}
		frags = append(frags, bytes.Clone(e.buf[start:]))
		e.buf = e.buf[:start]
	}
	e.writeSortedMembers(frags)
	return nil
}

func (e *encodeState) encodeStruct(rv reflect.Value) error {
	fields := cachedFields(rv.Type())
	frags := make([][]byte, 0, len(fields))
	for i := range fields {
		f := &fields[i]
		fv, ok := fieldByIndex(rv, f.index)
		if !ok {
			continue // nil embedded pointer on the path
		}
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}
		start := len(e.buf)
		e.buf = appendQuotedString(e.buf, f.name)
		e.buf = append(e.buf, ':')
		if err := e.encode(fv); err != nil {
			return err
		}
		frags = append(frags, bytes.Clone(e.buf[start:]))
		e.buf = e.buf[:start]
	}
	e.writeSortedMembers(frags)
	return nil
}

// writeSortedMembers emits a keyed group from its rendered member
// fragments. Every fragment starts with the quoted, escaped key, so
// byte-comparing whole fragments orders members by key bytes. Equal
// fragments keep their order of appearance.
func (e *encodeState) writeSortedMembers(frags [][]byte) {
	slices.SortStableFunc(frags, bytes.Compare)
	e.buf = append(e.buf, '{')
	for i, frag := range frags {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		e.buf = append(e.buf, frag...)
	}
	e.buf = append(e.buf, '}')
}

func (e *encodeState) encodeDynamic(v Value) error {
	switch v.kind {
	case KindNull:
		e.buf = append(e.buf, "null"...)
	case KindBool:
		if v.boolv {
			e.buf = append(e.buf, "true"...)
		} else {
			e.buf = append(e.buf, "false"...)
		}
	case KindInt:
		e.buf = strconv.AppendInt(e.buf, v.intv, 10)
	case KindUint:
		e.buf = strconv.AppendUint(e.buf, v.uintv, 10)
	case KindString:
		return e.appendString(v.str)
	case KindBytes:
		e.encodeBytes(v.bytes)
	case KindSequence:
		e.buf = append(e.buf, '[')
		for i, elem := range v.seq {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			if err := e.encodeDynamic(elem); err != nil {
				return err
			}
		}
		e.buf = append(e.buf, ']')
	case KindMap:
		return e.encodeDynamicMembers(v.members)
	case KindVariant:
		return e.encodeVariant(v)
	case KindAny:
		return e.marshal(v.anyv)
	default:
		return &InvalidInputError{msg: "invalid dynamic value"}
	}
	return nil
}

func (e *encodeState) encodeDynamicMembers(members []Member) error {
	frags := make([][]byte, 0, len(members))
	for _, m := range members {
		start := len(e.buf)
		if err := e.appendString(m.Key); err != nil {
			return err
		}
		e.buf = append(e.buf, ':')
		if err := e.encodeDynamic(m.Value); err != nil {
			return err
		}
		frags = append(frags, bytes.Clone(e.buf[start:]))
		e.buf = e.buf[:start]
	}
	e.writeSortedMembers(frags)
	return nil
}

func (e *encodeState) encodeVariant(v Value) error {
	switch v.arity {
	case unitArity:
		return e.appendString(v.str)
	case newtypeArity:
		return e.encodeDynamic(v.seq[0])
	case tupleArity:
		e.buf = append(e.buf, '{')
		if err := e.appendString(v.str); err != nil {
			return err
		}
		e.buf = append(e.buf, ':', '[')
		for i, elem := range v.seq {
			if i > 0 {
				e.buf = append(e.buf, ',')
			}
			if err := e.encodeDynamic(elem); err != nil {
				return err
			}
		}
		e.buf = append(e.buf, ']', '}')
		return nil
	case structArity:
		e.buf = append(e.buf, '{')
		if err := e.appendString(v.str); err != nil {
			return err
		}
		e.buf = append(e.buf, ':')
		if err := e.encodeDynamicMembers(v.members); err != nil {
			return err
		}
		e.buf = append(e.buf, '}')
		return nil
	}
	return &InvalidInputError{msg: "invalid variant"}
}
