package canonicaljson

import "unicode/utf8"

// Escape actions for the string emitter. A value of 'x' at index i means
// byte i is emitted as "\x"; escU means a "\u00XX" sequence; 0 means the
// byte passes through untouched.
const (
	escB = 'b'  // \x08
	escT = 't'  // \x09
	escN = 'n'  // \x0A
	escF = 'f'  // \x0C
	escR = 'r'  // \x0D
	escQ = '"'  // \x22
	escS = '\\' // \x5C
	escU = 'u'  // \x00..\x1F except the ones above
)

// escapeTable covers the full byte range. Bytes >= 0x80 are the middle of
// UTF-8 sequences and always pass through; canonical JSON requires raw
// UTF-8 output, never \uXXXX escapes for non-ASCII text.
var escapeTable = [256]byte{
	//   1     2     3     4     5     6     7     8     9     A     B     C     D     E     F
	escU, escU, escU, escU, escU, escU, escU, escU, escB, escT, escN, escU, escF, escR, escU, escU, // 0
	escU, escU, escU, escU, escU, escU, escU, escU, escU, escU, escU, escU, escU, escU, escU, escU, // 1
	0, 0, escQ, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 2
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 3
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, // 4
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, escS, 0, 0, 0, // 5
}

const hexDigits = "0123456789abcdef"

// appendString validates and emits one string value. Canonical output must
// be valid UTF-8 and a Go string carries no such guarantee, so invalid
// input is rejected rather than passed through or silently replaced.
func (e *encodeState) appendString(s string) error {
	if !utf8.ValidString(s) {
		return &InvalidInputError{msg: "string is not valid UTF-8"}
	}
	e.buf = appendQuotedString(e.buf, s)
	return nil
}

// appendQuotedString appends s to dst as a quoted JSON string with minimal,
// canonical escaping. The scan batches runs of unescaped bytes into single
// appends.
func appendQuotedString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		esc := escapeTable[c]
		if esc == 0 {
			continue
		}
		if start < i {
			dst = append(dst, s[start:i]...)
		}
		if esc == escU {
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		} else {
			dst = append(dst, '\\', esc)
		}
		start = i + 1
	}
	if start < len(s) {
		dst = append(dst, s[start:]...)
	}
	return append(dst, '"')
}
