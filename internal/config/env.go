package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// OSLookup читает переменные окружения процесса.
var OSLookup LookupFunc = os.LookupEnv

// MapLookup удобен в тестах и для значений из .env файлов.
func MapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

// DotenvLookup сначала спрашивает base, а затем значения из .env файлов.
// Отсутствующие файлы пропускаются, окружение процесса не изменяется.
func DotenvLookup(base LookupFunc, files ...string) (LookupFunc, error) {
	if base == nil {
		base = OSLookup
	}

	values := make(map[string]string)
	for _, file := range files {
		if file == "" {
			continue
		}
		env, err := godotenv.Read(file)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("%w: read env file %s: %v", ErrConfig, file, err)
		}
		for k, v := range env {
			// первый файл имеет приоритет, как в godotenv.Load
			if _, exists := values[k]; !exists {
				values[k] = v
			}
		}
	}

	fromFiles := MapLookup(values)
	return func(key string) (string, bool) {
		if v, ok := base(key); ok {
			return v, ok
		}
		return fromFiles(key)
	}, nil
}
