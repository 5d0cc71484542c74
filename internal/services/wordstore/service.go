package wordstore

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/mcoot/wordlegame/internal/model"
)

// ErrInvalidEncoding is returned when a word list is not valid UTF-8
var ErrInvalidEncoding = errors.New("word list is not valid UTF-8")

// Service loads per-language word lists from disk
type Service struct {
	cfg    model.Config
	logger *slog.Logger
}

// New creates a new WordStore service
func New(cfg model.Config, logger *slog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		logger: logger,
	}
}

// FileName returns the word list file name for a language, e.g. words_en.txt
func (s *Service) FileName(lang model.Lang) string {
	return fmt.Sprintf("%s_%s.txt", s.cfg.BaseFilename, lang.Code())
}

// Path returns the full path of the word list for a language
func (s *Service) Path(folder string, lang model.Lang) string {
	return filepath.Join(folder, s.FileName(lang))
}

// GetWords loads the word list for lang from folder. Each line is one word,
// kept verbatim. Read failures are logged and yield an empty list.
func (s *Service) GetWords(folder string, lang model.Lang) []string {
	path := s.Path(folder, lang)
	words, err := s.LoadFile(path)
	if err != nil {
		s.logger.Error("failed to load word list",
			slog.String("path", path),
			slog.String("lang", lang.Code()),
			slog.String("error", err.Error()),
		)
		return []string{}
	}

	s.logger.Debug("word list loaded",
		slog.String("path", path),
		slog.String("lang", lang.Code()),
		slog.Int("word_count", len(words)),
	)
	return words
}

// LoadFile reads a word list file (one word per line)
func (s *Service) LoadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return splitLines(string(data))
}

// splitLines splits on newlines, dropping a trailing carriage return from
// each line and the empty line after a final newline. Nothing else is
// trimmed or filtered.
func splitLines(data string) ([]string, error) {
	words := []string{}
	scanner := bufio.NewScanner(strings.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), len(data)+1)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// ServiceInterface is the word list surface used by the game
type ServiceInterface interface {
	FileName(lang model.Lang) string
	Path(folder string, lang model.Lang) string
	GetWords(folder string, lang model.Lang) []string
	LoadFile(path string) ([]string, error)
}

var _ ServiceInterface = (*Service)(nil)
