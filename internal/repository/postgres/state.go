package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"leitner/internal/domain"
	"leitner/internal/repository"

	"github.com/Masterminds/squirrel"
)

// insertBatchSize keeps a single INSERT well below the 65535 bind parameter limit
const insertBatchSize = 1000

// StateRepo implements repository.StateRepository for one deck
type StateRepo struct {
	db   *sql.DB
	deck string
}

// NewStateRepo creates a new state repository for the named deck
func NewStateRepo(db *sql.DB, deck string) *StateRepo {
	return &StateRepo{db: db, deck: deck}
}

// Exists checks if the deck has been saved before
func (r *StateRepo) Exists(ctx context.Context) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM decks WHERE name = $1)`
	if err := r.db.QueryRowContext(ctx, query, r.deck).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// Load rebuilds the box set from the stored rows
func (r *StateRepo) Load(ctx context.Context) (*domain.BoxSet, error) {
	exists, err := r.Exists(ctx)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("%w: deck %q", repository.ErrStateNotFound, r.deck)
	}

	query := `
		SELECT box, position, term, translation
		FROM box_pairs
		WHERE deck = $1
		ORDER BY box, position
	`
	rows, err := r.db.QueryContext(ctx, query, r.deck)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	boxes := domain.NewBoxSet()
	for rows.Next() {
		var box, position int
		var pair domain.WordPair
		if err := rows.Scan(&box, &position, &pair.Term, &pair.Translation); err != nil {
			return nil, err
		}

		if !domain.ValidBox(box) {
			return nil, fmt.Errorf("%w: box %d out of range", repository.ErrCorruptState, box)
		}
		// Rows are ordered, so each position must extend its box by exactly one
		if position != boxes.Size(box) {
			return nil, fmt.Errorf("%w: box %d has a gap at position %d", repository.ErrCorruptState, box, position)
		}
		if !pair.Valid() {
			return nil, fmt.Errorf("%w: box %d position %d has an empty field", repository.ErrCorruptState, box, position)
		}

		boxes.AddWord(pair, box)
	}

	return boxes, rows.Err()
}

// Save replaces the stored rows of the deck in one transaction
func (r *StateRepo) Save(ctx context.Context, boxes *domain.BoxSet) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsert := `
		INSERT INTO decks (name, saved_at)
		VALUES ($1, NOW())
		ON CONFLICT (name)
		DO UPDATE SET saved_at = NOW()
	`
	if _, err := tx.ExecContext(ctx, upsert, r.deck); err != nil {
		return fmt.Errorf("upsert deck: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM box_pairs WHERE deck = $1`, r.deck); err != nil {
		return fmt.Errorf("clear deck: %w", err)
	}

	for _, batch := range r.insertBatches(boxes) {
		query, args, err := batch.ToSql()
		if err != nil {
			return fmt.Errorf("build insert: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert pairs: %w", err)
		}
	}

	return tx.Commit()
}

func (r *StateRepo) insertBatches(boxes *domain.BoxSet) []squirrel.InsertBuilder {
	var batches []squirrel.InsertBuilder
	var current squirrel.InsertBuilder
	rowsInBatch := 0

	for b := 0; b < domain.BoxCount; b++ {
		for pos, pair := range boxes.BoxContents(b) {
			if rowsInBatch == 0 {
				current = squirrel.Insert("box_pairs").
					Columns("deck", "box", "position", "term", "translation").
					PlaceholderFormat(squirrel.Dollar)
			}
			current = current.Values(r.deck, b, pos, pair.Term, pair.Translation)
			rowsInBatch++

			if rowsInBatch == insertBatchSize {
				batches = append(batches, current)
				rowsInBatch = 0
			}
		}
	}
	if rowsInBatch > 0 {
		batches = append(batches, current)
	}

	return batches
}
