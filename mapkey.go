package canonicaljson

import (
	"encoding"
	"reflect"
	"strconv"
)

// appendMapKey renders one object key. Keys take a restricted path: only
// string-producing shapes are accepted, after unwrapping any interface or
// pointer indirection. Integer keys are legal but render as quoted decimal
// strings, since JSON object keys are always string tokens. Anything else
// fails with "key must be a string".
func (e *encodeState) appendMapKey(rv reflect.Value) error {
	for {
		t := rv.Type()
		if t.Kind() != reflect.String && t.Implements(textMarshalerType) {
			if t.Kind() == reflect.Pointer && rv.IsNil() {
				return errKeyType(t)
			}
			text, err := rv.Interface().(encoding.TextMarshaler).MarshalText()
			if err != nil {
				return &MarshalerError{GoType: t, Err: err}
			}
			return e.appendString(string(text))
		}

		switch rv.Kind() {
		case reflect.String:
			return e.appendString(rv.String())
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			e.buf = append(e.buf, '"')
			e.buf = strconv.AppendInt(e.buf, rv.Int(), 10)
			e.buf = append(e.buf, '"')
			return nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			e.buf = append(e.buf, '"')
			e.buf = strconv.AppendUint(e.buf, rv.Uint(), 10)
			e.buf = append(e.buf, '"')
			return nil
		case reflect.Interface, reflect.Pointer:
			// A string behind indirection is still a string key;
			// only a nil key has no string form.
			if rv.IsNil() {
				return errKeyType(t)
			}
			rv = rv.Elem()
		default:
			return errKeyType(t)
		}
	}
}
