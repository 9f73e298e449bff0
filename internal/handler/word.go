package handler

import (
	"context"
	"strings"

	"leitner/internal/domain"
	"leitner/internal/i18n"

	"go.uber.org/zap"
)

// Run quizzes pairs until the user stops or there is nothing left to ask.
// Stopping saves the session; running out of pairs does not.
func (h *Handler) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			h.logger.Info("Session interrupted", zap.Error(err))
			return h.save(ctx)
		}

		pair, ok := h.trainer.Next()
		if !ok {
			h.println(h.msgs.Get(i18n.NoWords))
			return nil
		}

		answer, ok := h.ask(ctx, pair)
		if !ok {
			return h.save(ctx)
		}

		if h.trainer.Answer(pair, answer) {
			h.println(h.msgs.Get(i18n.Correct))
		} else {
			h.println(h.msgs.Get(i18n.Wrong, pair.Translation))
		}
	}
}

// ask prompts for pair until it gets an answer.
// It returns false on an empty line, at end of input or on cancellation.
func (h *Handler) ask(ctx context.Context, pair domain.WordPair) (string, bool) {
	for {
		h.println(h.msgs.Get(i18n.TranslatePrompt), pair.Term)

		line, ok := h.readLine(ctx)
		if !ok {
			return "", false
		}

		switch {
		case line == printCommand:
			h.PrintBoxes()
		case strings.TrimSpace(line) == "":
			return "", false
		default:
			return line, true
		}
	}
}

func (h *Handler) save(ctx context.Context) error {
	h.stats.LogSummary("save", h.trainer.Boxes())
	return h.trainer.Save(context.WithoutCancel(ctx))
}
