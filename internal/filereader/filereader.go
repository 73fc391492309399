package filereader

import (
	"fmt"
	"io"
	"os"

	"github.com/qa-insights/go-qa-analytics/internal/utils"
	"golang.org/x/text/transform"
)

// Open opens a report file for reading, transparently decoding UTF-8/UTF-16
// byte order marks into plain UTF-8. The caller must close the returned
// ReadCloser.
func Open(filePath string) (io.ReadCloser, error) {
	detectedEncoding, err := utils.DetectEncoding(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to detect encoding of %s: %w", filePath, err)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}

	if detectedEncoding == nil {
		return f, nil
	}
	return &decodedReadCloser{
		Reader: transform.NewReader(f, detectedEncoding.NewDecoder()),
		closer: f,
	}, nil
}

type decodedReadCloser struct {
	io.Reader
	closer io.Closer
}

func (d *decodedReadCloser) Close() error {
	return d.closer.Close()
}
