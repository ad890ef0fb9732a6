package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"feedmill.app/internal/worker"
)

const stdinName = "-"

var gzipMagic = []byte{0x1f, 0x8b}

// readDocuments reads every named file, or stdin for "-". No names means
// stdin.
func readDocuments(stdin io.Reader, names []string) ([]worker.Document, error) {
	if len(names) == 0 {
		names = []string{stdinName}
	}

	docs := make([]worker.Document, len(names))
	for i, name := range names {
		data, err := readDocument(stdin, name)
		if err != nil {
			return nil, err
		}
		docs[i] = worker.Document{Name: name, Data: data}
	}
	return docs, nil
}

func readDocument(stdin io.Reader, name string) ([]byte, error) {
	var data []byte
	var err error
	if name == stdinName {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("cli: read %q: %w", name, err)
	}

	if strings.HasSuffix(name, ".gz") || bytes.HasPrefix(data, gzipMagic) {
		if data, err = gunzip(data); err != nil {
			return nil, fmt.Errorf("cli: decompress %q: %w", name, err)
		}
	}
	return data, nil
}

func gunzip(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err //nolint:wrapcheck // wrapped by caller
	}
	defer r.Close()
	return io.ReadAll(r) //nolint:wrapcheck // wrapped by caller
}
