package utils

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrUndecodable is returned when file bytes match none of the supported
// encodings. Callers are expected to skip the file and continue.
var ErrUndecodable = errors.New("not valid UTF-8 or a supported Chinese encoding")

// DecodeText decodes arbitrary text bytes to UTF-8.
// It supports:
// - UTF-8 (with or without BOM)
// - UTF-16 LE/BE with BOM
// - GB18030/GBK (common for Simplified Chinese)
func DecodeText(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	// Handle UTF-8 BOM
	if bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}) {
		data = data[3:]
	}

	// Handle UTF-16 BOMs
	if bytes.HasPrefix(data, []byte{0xFE, 0xFF}) {
		r := transform.NewReader(bytes.NewReader(data), unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder())
		b, err := io.ReadAll(r)
		if err == nil {
			return string(b), nil
		}
	}
	if bytes.HasPrefix(data, []byte{0xFF, 0xFE}) {
		r := transform.NewReader(bytes.NewReader(data), unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
		b, err := io.ReadAll(r)
		if err == nil {
			return string(b), nil
		}
	}

	// Already valid UTF-8
	if utf8.Valid(data) {
		return string(data), nil
	}

	// Try common Simplified Chinese encodings. The decoders substitute
	// U+FFFD for invalid sequences instead of failing, so a replacement
	// rune in the output means the bytes did not match the encoding.
	for _, dec := range []transform.Transformer{
		simplifiedchinese.GB18030.NewDecoder(),
		simplifiedchinese.GBK.NewDecoder(),
	} {
		r := transform.NewReader(bytes.NewReader(data), dec)
		b, err := io.ReadAll(r)
		if err == nil && utf8.Valid(b) && !bytes.ContainsRune(b, utf8.RuneError) {
			return string(b), nil
		}
	}

	return "", ErrUndecodable
}

// ReadTextFile reads a file, decodes it to UTF-8 and normalizes line
// endings: CRLF/CR -> LF.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	decoded, err := DecodeText(data)
	if err != nil {
		return "", err
	}
	normalized := strings.ReplaceAll(decoded, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return normalized, nil
}

func IsValidTxt(path string) bool {
	if !strings.HasSuffix(path, ".txt") {
		return false
	}
	if _, err := os.Stat(path); err != nil {
		return false
	}
	return true
}
