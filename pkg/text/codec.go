// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package text

import (
	"bytes"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrEncoding means a file's character set could not be determined with
// enough confidence, or decoding failed. Aborting beats silently
// mangling non-ASCII flavor text.
var ErrEncoding = errors.Base("undetectable or undecodable character set")

// minConfidence is the chardet confidence (0-100) below which detection
// is treated as a failure
const minConfidence = 90

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// 📄 Document is a decoded template file. It remembers enough about the
// original bytes (charset, BOM) to re-encode edited text such that an
// untouched document round-trips byte-identically.
type Document struct {
	// Text is the decoded content, BOM stripped
	Text string

	// Charset is the detected character set label, for reporting
	Charset string

	bom []byte
	enc encoding.Encoding
}

// 🔍 Detect decodes raw file bytes. Plain UTF-8 (with or without BOM)
// and UTF-16 with a BOM are recognized directly; anything else goes
// through statistical detection and is rejected below minConfidence.
func Detect(raw []byte) (*Document, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		rest := raw[len(bomUTF8):]
		if !utf8.Valid(rest) {
			return nil, errors.Errorf("%w: UTF-8 BOM but invalid UTF-8 content", ErrEncoding)
		}
		return &Document{Text: string(rest), Charset: "UTF-8-SIG", bom: bomUTF8}, nil

	case bytes.HasPrefix(raw, bomUTF16LE):
		return detectUTF16(raw, bomUTF16LE, unicode.LittleEndian, "UTF-16LE")

	case bytes.HasPrefix(raw, bomUTF16BE):
		return detectUTF16(raw, bomUTF16BE, unicode.BigEndian, "UTF-16BE")

	case utf8.Valid(raw):
		charset := "UTF-8"
		if isASCII(raw) {
			charset = "ASCII"
		}
		return &Document{Text: string(raw), Charset: charset}, nil
	}

	// Statistical fallback for legacy single/multi-byte charsets
	result, err := chardet.NewTextDetector().DetectBest(raw)
	if err != nil {
		return nil, errors.Errorf("%w: %w", ErrEncoding, err)
	}
	if result.Confidence < minConfidence {
		return nil, errors.Errorf("%w: best guess %s at %d%% confidence", ErrEncoding, result.Charset, result.Confidence)
	}

	enc, err := ianaindex.IANA.Encoding(result.Charset)
	if err != nil || enc == nil {
		return nil, errors.Errorf("%w: detected charset %q has no decoder", ErrEncoding, result.Charset)
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, errors.Errorf("%w: decoding as %s: %w", ErrEncoding, result.Charset, err)
	}

	return &Document{Text: string(decoded), Charset: result.Charset, enc: enc}, nil
}

func detectUTF16(raw, bom []byte, endian unicode.Endianness, label string) (*Document, error) {
	enc := unicode.UTF16(endian, unicode.IgnoreBOM)
	decoded, err := enc.NewDecoder().Bytes(raw[len(bom):])
	if err != nil {
		return nil, errors.Errorf("%w: decoding as %s: %w", ErrEncoding, label, err)
	}
	return &Document{Text: string(decoded), Charset: label, bom: bom, enc: enc}, nil
}

// ✍️ Encode converts edited text back into the document's original
// encoding, re-attaching the BOM if the source had one
func (d *Document) Encode(text string) ([]byte, error) {
	var body []byte
	if d.enc == nil {
		body = []byte(text)
	} else {
		encoded, err := d.enc.NewEncoder().Bytes([]byte(text))
		if err != nil {
			return nil, errors.Errorf("%w: re-encoding as %s: %w", ErrEncoding, d.Charset, err)
		}
		body = encoded
	}

	if len(d.bom) == 0 {
		return body, nil
	}
	out := make([]byte, 0, len(d.bom)+len(body))
	out = append(out, d.bom...)
	return append(out, body...), nil
}

// ✂️ SplitLines splits text into lines, each keeping its own terminator
// bytes ("\n", "\r\n", or a bare "\r"). Joining the result reproduces
// the input exactly, including a final line with no terminator.
func SplitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\n':
			lines = append(lines, s[start:i+1])
			start = i + 1
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			lines = append(lines, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
