// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package protocol

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"math"
)

// fields is a decoded message with typed accessors. Each accessor reports
// false when the key is absent or holds a value of another JSON type, so
// parsers can tell "missing" from "zero".
type fields map[string]any

func decodeFields(raw []byte) (fields, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var f fields
	if err := dec.Decode(&f); err != nil {
		return nil, err
	}
	if f == nil {
		// "null" decodes without error
		return nil, errNotObject
	}
	return f, nil
}

func (f fields) str(key string) (string, bool) {
	v, ok := f[key].(string)
	return v, ok
}

// bytes reads a base64 string, the encoding json uses for []byte. present
// is true when the key holds a string, even one that does not decode.
func (f fields) bytes(key string) (b []byte, present bool, err error) {
	s, ok := f[key].(string)
	if !ok {
		return nil, false, nil
	}
	b, err = base64.StdEncoding.DecodeString(s)
	return b, true, err
}

func (f fields) boolean(key string) (bool, bool) {
	v, ok := f[key].(bool)
	return v, ok
}

func (f fields) int64(key string) (int64, bool) {
	n, ok := f[key].(json.Number)
	if !ok {
		return 0, false
	}
	v, err := n.Int64()
	if err != nil {
		return 0, false
	}
	return v, true
}

func (f fields) int32(key string) (int32, bool) {
	v, ok := f.int64(key)
	if !ok || v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

func (f fields) strings(key string) ([]string, bool) {
	list, ok := f[key].([]any)
	if !ok {
		return nil, false
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, isStr := item.(string)
		if !isStr {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}
