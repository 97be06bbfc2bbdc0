// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx provides functions for YAML encoding, using yaml.v3.
package yamlx

import (
	"io"

	"cogentcore.org/scenegraph/base/iox"
	"gopkg.in/yaml.v3"
)

// NewDecoder returns a new [yaml.Decoder]
func NewDecoder(r io.Reader) *yaml.Decoder { return yaml.NewDecoder(r) }

// Open reads the given object from the given filename using YAML encoding
func Open(v any, filename string) error {
	return iox.Open(v, filename, iox.NewDecoderFunc(NewDecoder))
}

// Read reads the given object from the given reader,
// using YAML encoding
func Read(v any, reader io.Reader) error {
	return iox.Read(v, reader, iox.NewDecoderFunc(NewDecoder))
}

// ReadBytes reads the given object from the given bytes,
// using YAML encoding
func ReadBytes(v any, data []byte) error {
	return iox.ReadBytes(v, data, iox.NewDecoderFunc(NewDecoder))
}

// NewEncoder returns a new [yaml.Encoder]
func NewEncoder(w io.Writer) *yaml.Encoder { return yaml.NewEncoder(w) }

// closingEncoder closes the yaml.Encoder after each document,
// which flushes any buffered output to the writer.
type closingEncoder struct {
	*yaml.Encoder
}

func (e closingEncoder) Encode(v any) error {
	if err := e.Encoder.Encode(v); err != nil {
		return err
	}
	return e.Encoder.Close()
}

func newClosingEncoder(w io.Writer) iox.Encoder {
	return closingEncoder{NewEncoder(w)}
}

// Save writes the given object to the given filename using YAML encoding
func Save(v any, filename string) error {
	return iox.Save(v, filename, newClosingEncoder)
}

// Write writes the given object using YAML encoding
func Write(v any, writer io.Writer) error {
	return iox.Write(v, writer, newClosingEncoder)
}

// WriteBytes writes the given object, returning bytes of the encoding,
// using YAML encoding
func WriteBytes(v any) ([]byte, error) {
	return iox.WriteBytes(v, newClosingEncoder)
}
