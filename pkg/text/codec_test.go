package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
)

func TestDetect_Encode_RoundTrip(t *testing.T) {
	utf16le := append([]byte{0xFF, 0xFE}, []byte{'H', 0, 'i', 0, '\r', 0, '\n', 0}...)
	utf16be := append([]byte{0xFE, 0xFF}, []byte{0, 'H', 0, 'i', 0, '\n'}...)

	tests := []struct {
		name        string
		raw         []byte
		wantCharset string
		wantText    string
	}{
		{
			name:        "plain_ascii",
			raw:         []byte("Cost = 200,\r\n"),
			wantCharset: "ASCII",
			wantText:    "Cost = 200,\r\n",
		},
		{
			name:        "utf8_no_bom",
			raw:         []byte("Gué de Charon\n"),
			wantCharset: "UTF-8",
			wantText:    "Gué de Charon\n",
		},
		{
			name:        "utf8_with_bom",
			raw:         append([]byte{0xEF, 0xBB, 0xBF}, []byte("DisplayName = \"Zagreus\"\r\n")...),
			wantCharset: "UTF-8-SIG",
			wantText:    "DisplayName = \"Zagreus\"\r\n",
		},
		{
			name:        "utf16_le_bom",
			raw:         utf16le,
			wantCharset: "UTF-16LE",
			wantText:    "Hi\r\n",
		},
		{
			name:        "utf16_be_bom",
			raw:         utf16be,
			wantCharset: "UTF-16BE",
			wantText:    "Hi\n",
		},
		{
			name:        "empty_file",
			raw:         []byte{},
			wantCharset: "ASCII",
			wantText:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Detect(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCharset, doc.Charset)
			assert.Equal(t, tt.wantText, doc.Text)

			// untouched text re-encodes byte-identically
			out, err := doc.Encode(doc.Text)
			require.NoError(t, err)
			assert.Equal(t, tt.raw, out)
		})
	}
}

func TestDetect_ShiftJIS(t *testing.T) {
	// legacy multi-byte charset with no BOM: goes through statistical
	// detection, then the IANA index for the decoder
	plain := "タルタロスからの脱出は続く。ザグレウスは冥界の出口を探し、" +
		"カロンの店で闇の結晶と宝石を買い集める。釣り場は各エリアに出現する。\n"
	raw, err := japanese.ShiftJIS.NewEncoder().Bytes([]byte(plain))
	require.NoError(t, err)

	doc, err := Detect(raw)
	require.NoError(t, err)
	assert.Equal(t, "Shift_JIS", doc.Charset)
	assert.Equal(t, plain, doc.Text)

	// untouched text re-encodes byte-identically
	out, err := doc.Encode(doc.Text)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestDetect_LowConfidence(t *testing.T) {
	// a short ISO-8859-1 sample: not valid UTF-8, and far too little
	// signal for the detector to clear the confidence bar
	raw := []byte("Gu\xe9 de Charon\n")
	_, err := Detect(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestDetect_InvalidUTF8AfterBOM(t *testing.T) {
	raw := append([]byte{0xEF, 0xBB, 0xBF}, 0xFF, 0xFE, 0xFD)
	_, err := Detect(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "unix_endings",
			input: "a\nb\nc\n",
			want:  []string{"a\n", "b\n", "c\n"},
		},
		{
			name:  "windows_endings",
			input: "a\r\nb\r\n",
			want:  []string{"a\r\n", "b\r\n"},
		},
		{
			name:  "no_trailing_newline",
			input: "a\nb",
			want:  []string{"a\n", "b"},
		},
		{
			name:  "bare_cr",
			input: "a\rb\r",
			want:  []string{"a\r", "b\r"},
		},
		{
			name:  "mixed",
			input: "a\r\nb\nc",
			want:  []string{"a\r\n", "b\n", "c"},
		},
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "blank_lines",
			input: "\n\n",
			want:  []string{"\n", "\n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitLines(tt.input)
			assert.Equal(t, tt.want, got)

			joined := ""
			for _, line := range got {
				joined += line
			}
			assert.Equal(t, tt.input, joined, "joining must reproduce the input")
		})
	}
}
