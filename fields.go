package canonicaljson

import (
	"reflect"
	"strings"
	"sync"
	"unicode"
)

// structField describes one encodable field of a struct type: the member
// name after `json` tag renaming, the index path to reach it (through
// embedded structs), and whether empty values are omitted.
type structField struct {
	name      string
	index     []int
	omitEmpty bool
}

var fieldCache sync.Map // reflect.Type -> []structField

func cachedFields(t reflect.Type) []structField {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]structField)
	}
	f, _ := fieldCache.LoadOrStore(t, typeFields(t))
	return f.([]structField)
}

// typeFields lists the fields of t in breadth-first order over embedded
// structs, so a shallower field shadows a deeper one with the same member
// name. Within one depth the first declared field wins. Declaration order
// is otherwise irrelevant: members are sorted canonically on encode.
func typeFields(t reflect.Type) []structField {
	type node struct {
		t     reflect.Type
		index []int
	}

	var fields []structField
	taken := make(map[string]bool)
	visited := make(map[reflect.Type]bool)
	queue := []node{{t: t}}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if visited[n.t] {
			continue
		}
		visited[n.t] = true

		for i := 0; i < n.t.NumField(); i++ {
			f := n.t.Field(i)
			tag := f.Tag.Get("json")
			if tag == "-" {
				continue
			}
			name, opts := parseTag(tag)
			if !isValidTag(name) {
				name = ""
			}
			index := make([]int, 0, len(n.index)+1)
			index = append(index, n.index...)
			index = append(index, i)

			if f.Anonymous && name == "" && f.IsExported() {
				ft := f.Type
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct {
					queue = append(queue, node{t: ft, index: index})
					continue
				}
			}
			if !f.IsExported() {
				continue
			}
			if name == "" {
				name = f.Name
			}
			if taken[name] {
				continue
			}
			taken[name] = true
			fields = append(fields, structField{
				name:      name,
				index:     index,
				omitEmpty: opts.Contains("omitempty"),
			})
		}
	}
	return fields
}

// fieldByIndex resolves an index path, dereferencing embedded pointers.
// It reports false when a nil embedded pointer makes the field
// unreachable; such members are simply absent from the output.
func fieldByIndex(rv reflect.Value, index []int) (reflect.Value, bool) {
	for i, x := range index {
		if i > 0 {
			if rv.Kind() == reflect.Pointer {
				if rv.IsNil() {
					return reflect.Value{}, false
				}
				rv = rv.Elem()
			}
		}
		rv = rv.Field(x)
	}
	return rv, true
}

// isEmptyValue mirrors the encoding/json notion of emptiness used by the
// omitempty tag option.
func isEmptyValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Interface, reflect.Pointer:
		return rv.IsNil()
	}
	return false
}

type tagOptions string

func parseTag(tag string) (string, tagOptions) {
	name, opts, _ := strings.Cut(tag, ",")
	return name, tagOptions(opts)
}

func (o tagOptions) Contains(name string) bool {
	s := string(o)
	for s != "" {
		var opt string
		opt, s, _ = strings.Cut(s, ",")
		if opt == name {
			return true
		}
	}
	return false
}

func isValidTag(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case strings.ContainsRune("!#$%&()*+-./:;<=>?@[]^_{|}~ ", c):
			// Backslash and quote are rejected: they would need
			// escaping inside the member name.
		case !unicode.IsLetter(c) && !unicode.IsDigit(c):
			return false
		}
	}
	return true
}
