package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// readInputFile loads a file, transparently decompressing it when the
// name ends in .gz. "-" reads standard input.
func readInputFile(path string) ([]byte, error) {
	var src io.Reader
	if path == "-" {
		src = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		src = f
	}
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(src)
		if err != nil {
			return nil, fmt.Errorf("open gzip input: %w", err)
		}
		defer zr.Close()
		src = zr
	}
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
