package json_test

// This package provides a compatibility layer for encoding/json and encoding/json/v2.
// No tests are needed as this is a thin wrapper that delegates to the standard library.
//
// The actual JSON functionality is exercised through the parent package's
// round-trip tests.
