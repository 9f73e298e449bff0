package handler

import (
	"context"
	"fmt"

	"leitner/internal/i18n"
)

// Start fills the boxes, offering to resume a saved session first
func (h *Handler) Start(ctx context.Context) error {
	resume, err := h.askResume(ctx)
	if err != nil {
		return err
	}

	if resume {
		if err := h.trainer.Resume(ctx); err != nil {
			return err
		}
	} else {
		if _, err := h.trainer.LoadWords(ctx); err != nil {
			return err
		}
	}

	h.stats.LogSummary("start", h.trainer.Boxes())
	h.PrintBoxes()
	return nil
}

func (h *Handler) askResume(ctx context.Context) (bool, error) {
	exists, err := h.trainer.HasSavedState(ctx)
	if err != nil {
		return false, fmt.Errorf("check saved state: %w", err)
	}
	if !exists {
		return false, nil
	}

	h.println(h.msgs.Get(i18n.ContinuePrompt))
	reply, ok := h.readLine(ctx)
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return ok && h.msgs.IsYes(reply), nil
}
