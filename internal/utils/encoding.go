package utils

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// DetectEncoding sniffs the byte order mark of a file. It returns nil when no
// BOM is present, in which case the caller should assume UTF-8. Report files
// produced on Windows CI runners are frequently UTF-16 with a BOM.
func DetectEncoding(filePath string) (encoding.Encoding, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bom := make([]byte, 3)
	n, err := f.Read(bom)
	if err != nil && err != io.EOF {
		return nil, err
	}
	bom = bom[:n]

	switch {
	case bytes.HasPrefix(bom, bomUTF8):
		return unicode.UTF8BOM, nil
	case bytes.HasPrefix(bom, bomUTF16LE):
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM), nil
	case bytes.HasPrefix(bom, bomUTF16BE):
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM), nil
	}
	return nil, nil
}
