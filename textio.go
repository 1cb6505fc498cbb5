package opine

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used for text and CSV files unless stated otherwise.
const DefaultEncoding = "utf-8"

type decodingFile struct {
	io.Reader
	io.Closer
}

// OpenText opens the file at path and decodes it from the named encoding to
// UTF-8. Names are the WHATWG labels, e.g. "utf-8", "latin1" or "cp1252".
func OpenText(path, encoding string) (io.ReadCloser, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", encoding, err)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return decodingFile{
		Reader: transform.NewReader(file, enc.NewDecoder()),
		Closer: file,
	}, nil
}

// ReadText returns the whole content of the file at path.
func ReadText(path, encoding string) (string, error) {
	file, err := OpenText(path, encoding)
	if err != nil {
		return "", err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("error reading %s: %w", path, err)
	}
	return string(data), nil
}
