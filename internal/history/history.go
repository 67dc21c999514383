package history

import (
	"database/sql"
	"fmt"

	"blackjack/internal/game"
)

// Entry is one stored round.
type Entry struct {
	Number      int
	Outcome     string
	PlayerScore int
	DealerScore int
	PlayerHand  string
	DealerHand  string
}

type Repository interface {
	Save(res game.Result) error
	Recent(limit int) ([]Entry, error)
}

type SQLiteRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(res game.Result) error {
	_, err := r.db.Exec(`
		INSERT INTO rounds (number, outcome, player_score, dealer_score, player_hand, dealer_hand)
		VALUES (?, ?, ?, ?, ?, ?)
	`, res.Number, res.Outcome.String(), res.PlayerScore, res.DealerScore,
		game.Describe(res.PlayerCards), game.Describe(res.DealerCards))

	if err != nil {
		return fmt.Errorf("failed to save round %d: %w", res.Number, err)
	}
	return nil
}

// Recent returns up to limit rounds, newest first.
func (r *SQLiteRepository) Recent(limit int) ([]Entry, error) {
	rows, err := r.db.Query(`
		SELECT number, outcome, player_score, dealer_score, player_hand, dealer_hand
		FROM rounds
		ORDER BY number DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list rounds: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Number, &e.Outcome, &e.PlayerScore, &e.DealerScore, &e.PlayerHand, &e.DealerHand); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}
