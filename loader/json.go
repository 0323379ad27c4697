// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Erik Kallen

package loader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/erikkallen/dataconf/node"
)

// JSON parses JSON documents. The decoder walks tokens instead of
// unmarshaling into map[string]any so object key order survives into the
// tree, and uses json.Number to keep integers and floats distinct.
type JSON struct{}

func (JSON) Format() Format { return FormatJSON }

func (JSON) Load(data []byte) (node.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	n, err := readJSONValue(dec)
	if err != nil {
		return nil, &Error{Format: FormatJSON, Err: err}
	}
	if _, err := dec.Token(); err == nil {
		return nil, &Error{Format: FormatJSON, Err: fmt.Errorf("trailing data after document")}
	}
	return n, nil
}

func readJSONValue(dec *json.Decoder) (node.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return jsonToken(dec, tok)
}

func jsonToken(dec *json.Decoder, tok json.Token) (node.Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readJSONObject(dec)
		case '[':
			return readJSONArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", t)
		}
	case string:
		return node.String(t), nil
	case bool:
		return node.Bool(t), nil
	case nil:
		return node.Null{}, nil
	case json.Number:
		if strings.ContainsAny(t.String(), ".eE") {
			f, err := t.Float64()
			if err != nil {
				return nil, err
			}
			return node.Float(f), nil
		}
		i, err := t.Int64()
		if err != nil {
			f, ferr := t.Float64()
			if ferr != nil {
				return nil, err
			}
			return node.Float(f), nil
		}
		return node.Int(i), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func readJSONObject(dec *json.Decoder) (node.Node, error) {
	m := node.NewMapping()
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := readJSONValue(dec)
		if err != nil {
			return nil, err
		}
		m.Set(key, val)
	}
	// Closing brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}

func readJSONArray(dec *json.Decoder) (node.Node, error) {
	var seq node.Sequence
	for dec.More() {
		val, err := readJSONValue(dec)
		if err != nil {
			return nil, err
		}
		seq = append(seq, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if seq == nil {
		seq = node.Sequence{}
	}
	return seq, nil
}
