package wordfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"leitner/internal/domain"

	"go.uber.org/zap"
)

// Reader implements repository.WordSource for a comma-separated word file
type Reader struct {
	path   string
	logger *zap.Logger
}

// NewReader creates a new word file reader
func NewReader(path string, logger *zap.Logger) *Reader {
	return &Reader{path: path, logger: logger}
}

// LoadPairs reads every well-formed pair from the file
func (r *Reader) LoadPairs(ctx context.Context) ([]domain.WordPair, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open word file: %w", err)
	}
	defer f.Close()

	pairs, err := Parse(ctx, f, r.logger)
	if err != nil {
		return nil, fmt.Errorf("read word file %s: %w", r.path, err)
	}

	r.logger.Info("Word file loaded",
		zap.String("path", r.path),
		zap.Int("pairs", len(pairs)),
	)
	return pairs, nil
}

// Parse reads "term,translation" lines. Lines that do not split into
// exactly two non-empty fields are skipped.
func Parse(ctx context.Context, src io.Reader, logger *zap.Logger) ([]domain.WordPair, error) {
	var pairs []domain.WordPair

	r := bufio.NewReader(src)
	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		line, err := r.ReadString('\n')
		if line == "" {
			if errors.Is(err, io.EOF) {
				return pairs, nil
			}
			return nil, err
		}
		lineNo++

		parts := strings.Split(trimNewline(line), ",")
		if len(parts) != 2 {
			logger.Debug("Skipping malformed line", zap.Int("line", lineNo))
			continue
		}

		pair := domain.NewWordPair(parts[0], parts[1])
		if !pair.Valid() {
			logger.Debug("Skipping line with empty field", zap.Int("line", lineNo))
			continue
		}
		pairs = append(pairs, pair)
	}
}

// trimNewline drops the line terminator, "\n" or "\r\n"
func trimNewline(line string) string {
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}
