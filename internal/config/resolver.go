package config

import (
	"errors"
	"fmt"
	"strings"
)

// CaseInsensitiveEnv включает поиск без учёта регистра, если переменная задана (с любым значением).
const CaseInsensitiveEnv = "CASE_INSENSITIVE"

var (
	ErrConfig           = errors.New("configuration error")
	ErrInsufficientArgs = fmt.Errorf("%w: insufficient arguments", ErrConfig)
	ErrQueryMissing     = fmt.Errorf("%w: query string missing", ErrConfig)
	ErrFileMissing      = fmt.Errorf("%w: file to search missing", ErrConfig)
)

// LookupFunc имеет ту же сигнатуру, что и os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// SearchConfig - неизменяемые параметры одного поиска.
type SearchConfig struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// CaseMode - режим регистра, заданный явным аргументом.
type CaseMode int

const (
	CaseKeep   CaseMode = iota // учитывать регистр
	CaseIgnore                 // игнорировать регистр
)

func (m CaseMode) String() string {
	if m == CaseIgnore {
		return "ignore"
	}
	return "keep"
}

// ParseCaseMode смотрит только на первый символ: "I" (только заглавная) означает игнорировать регистр,
// всё остальное, включая "i" и пустую строку, означает учитывать регистр.
func ParseCaseMode(token string) CaseMode {
	if strings.HasPrefix(token, "I") {
		return CaseIgnore
	}
	return CaseKeep
}

// Resolve собирает SearchConfig из аргументов командной строки.
// args[0] - имя программы, args[1] - запрос, args[2] - файл, args[3] - необязательный режим регистра.
// Явный режим важнее переменной окружения CASE_INSENSITIVE.
func Resolve(args []string, lookup LookupFunc) (*SearchConfig, error) {
	if len(args) == 0 {
		return nil, ErrInsufficientArgs
	}
	rest := args[1:]

	if len(rest) < 1 {
		return nil, ErrQueryMissing
	}
	if len(rest) < 2 {
		return nil, ErrFileMissing
	}

	cfg := &SearchConfig{
		Query:    rest[0],
		Filename: rest[1],
	}

	if len(rest) > 2 {
		cfg.CaseSensitive = ParseCaseMode(rest[2]) == CaseKeep
		return cfg, nil
	}

	if lookup == nil {
		lookup = OSLookup
	}
	_, insensitive := lookup(CaseInsensitiveEnv)
	cfg.CaseSensitive = !insensitive
	return cfg, nil
}
