// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonx provides functions for indented JSON encoding.
package jsonx

import (
	"encoding/json"
	"io"

	"cogentcore.org/scenegraph/base/iox"
)

// NewDecoder returns a new [json.Decoder]
func NewDecoder(r io.Reader) *json.Decoder { return json.NewDecoder(r) }

// Open reads the given object from the given filename using JSON encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(NewDecoder))
}

// Read reads the given object from the given reader,
// using JSON encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(NewDecoder))
}

// ReadBytes reads the given object from the given bytes,
// using JSON encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(NewDecoder))
}

// NewIndentEncoder returns a new [json.Encoder] with tab indentation.
func NewIndentEncoder(w io.Writer) *json.Encoder {
	e := json.NewEncoder(w)
	e.SetIndent("", "\t")
	return e
}

// Save writes the given object to the given filename using JSON encoding, with indentation
func Save(v any, filename string) error {
	return iox.Save(v, filename, iox.NewEncoderFunc(NewIndentEncoder))
}

// Write writes the given object using JSON encoding, with indentation
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, iox.NewEncoderFunc(NewIndentEncoder))
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using JSON encoding, with indentation
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, iox.NewEncoderFunc(NewIndentEncoder))
}
