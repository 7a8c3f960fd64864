package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"minigrep/internal/config"
	"minigrep/internal/search"

	"go.uber.org/zap"
)

var ErrOutput = errors.New("output error")

// SourceReader отдаёт содержимое файла целиком в виде текста.
type SourceReader interface {
	ReadText(path string) (string, error)
}

type Service struct {
	reader SourceReader
	out    io.Writer
	logger *zap.Logger
}

func NewService(reader SourceReader, out io.Writer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		reader: reader,
		out:    out,
		logger: logger,
	}
}

// Run читает файл, фильтрует строки и печатает совпадения в исходном порядке.
func (s *Service) Run(cfg *config.SearchConfig) error {
	start := time.Now()

	contents, err := s.reader.ReadText(cfg.Filename)
	if err != nil {
		s.logger.Debug("read failed", zap.String("file", cfg.Filename), zap.Error(err))
		return err
	}

	var results []string
	if cfg.CaseSensitive {
		results = search.Search(cfg.Query, contents)
	} else {
		results = search.SearchCaseInsensitive(cfg.Query, contents)
	}

	if err := s.printResult(results); err != nil {
		return err
	}

	s.logger.Debug("search finished",
		zap.String("file", cfg.Filename),
		zap.Bool("case_sensitive", cfg.CaseSensitive),
		zap.Int("bytes", len(contents)),
		zap.Int("matches", len(results)),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// printResult выводит каждую найденную строку без изменений, по одной на строку.
func (s *Service) printResult(lines []string) error {
	w := bufio.NewWriter(s.out)
	for _, line := range lines {
		if _, err := w.WriteString(line); err != nil {
			return fmt.Errorf("%w: %v", ErrOutput, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("%w: %v", ErrOutput, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrOutput, err)
	}
	return nil
}
