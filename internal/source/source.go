package source

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"
)

var (
	ErrIO      = errors.New("io error")
	ErrNotText = errors.New("file is not valid UTF-8 text")
)

// FileReader читает файл целиком за один вызов.
type FileReader struct{}

func NewFileReader() *FileReader {
	return &FileReader{}
}

func (r *FileReader) ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %s: %w", ErrIO, path, ErrNotText)
	}
	return string(data), nil
}
