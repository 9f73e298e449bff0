package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"leitner/internal/domain"
	"leitner/internal/i18n"
	"leitner/internal/service"

	"go.uber.org/zap"
)

// printCommand dumps all boxes instead of answering; it is never localized
const printCommand = ":print"

// Handler drives an interactive training session over a line stream
type Handler struct {
	trainer *service.TrainerService
	stats   *service.StatsService
	msgs    *i18n.Messages
	logger  *zap.Logger

	lines chan string
	out   io.Writer
}

// NewHandler creates a new handler instance
func NewHandler(
	trainer *service.TrainerService,
	stats *service.StatsService,
	msgs *i18n.Messages,
	in io.Reader,
	out io.Writer,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		trainer: trainer,
		stats:   stats,
		msgs:    msgs,
		logger:  logger,
		lines:   make(chan string),
		out:     out,
	}
	go h.scan(in)
	return h
}

// PrintBoxes writes every box label followed by the terms it holds
func (h *Handler) PrintBoxes() {
	boxes := h.trainer.Boxes()
	for b := 0; b < domain.BoxCount; b++ {
		h.println(h.msgs.Get(i18n.Box, b+1))
		for _, pair := range boxes.BoxContents(b) {
			h.println(pair.Term)
		}
	}
}

// scan feeds input lines to h.lines and closes it at end of input
func (h *Handler) scan(in io.Reader) {
	defer close(h.lines)

	r := bufio.NewReader(in)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			h.lines <- strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				h.logger.Error("Failed to read input", zap.Error(err))
			}
			return
		}
	}
}

// readLine returns the next input line, or false at end of input
// or once ctx is done
func (h *Handler) readLine(ctx context.Context) (string, bool) {
	select {
	case line, ok := <-h.lines:
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}

func (h *Handler) println(a ...interface{}) {
	fmt.Fprintln(h.out, a...)
}
