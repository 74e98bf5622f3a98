// Package canonicaljson encodes Go values as canonical JSON: a deterministic,
// byte-for-byte reproducible JSON encoding suitable for signing and hashing,
// where two independent implementations must agree on exactly one
// serialization of the same logical value.
//
// The canonical form is defined by four rules:
//
//   - Object members are sorted ascending by the raw UTF-8 bytes of their
//     encoded "key":value text.
//   - No insignificant whitespace is emitted anywhere.
//   - Numbers are integers only; floating-point values are rejected with
//     an InvalidInputError rather than coerced.
//   - The encoded document must not exceed MaxEncodedLen (65,535) bytes.
//
// Strings are emitted as raw UTF-8: only control characters, '"' and '\'
// are escaped. Byte slices encode as JSON arrays of numbers, not base64,
// so that the output stays within the canonical grammar.
//
// Arbitrary Go values are walked with reflection, the same way
// encoding/json walks them. Values with no Go-native shape, such as tagged
// variants, are built with the dynamic Value type.
package canonicaljson
