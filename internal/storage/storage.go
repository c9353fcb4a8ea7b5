package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences = "preferences"
	keyStats       = "stats"
)

// Outcome is a finished match from the human player's point of view.
type Outcome int

const (
	OutcomeWin Outcome = iota
	OutcomeLoss
	OutcomeDraw
)

// Preferences stores user settings for the next match.
type Preferences struct {
	EnginePath string    `json:"engine_path"`
	Endpoint   string    `json:"endpoint"` // HTTP best-move endpoint, if any
	MoveLimit  int       `json:"move_limit"`
	MoveTimeMs int       `json:"move_time_ms"`
	HumanWhite bool      `json:"human_white"`
	StartFEN   string    `json:"start_fen"`
	LastPlayed time.Time `json:"last_played"`
}

// DefaultPreferences returns the default user settings.
func DefaultPreferences() *Preferences {
	return &Preferences{
		EnginePath: "stockfish",
		MoveLimit:  40,
		MoveTimeMs: 1000,
		HumanWhite: true,
		LastPlayed: time.Now(),
	}
}

// MatchStats accumulates results across matches.
type MatchStats struct {
	Played         int `json:"played"`
	Wins           int `json:"wins"`
	Losses         int `json:"losses"`
	Draws          int `json:"draws"`
	MoveLimitEnds  int `json:"move_limit_ends"` // matches adjudicated at the move limit
	CurrentStreak  int `json:"current_streak"`
	LongestWinStrk int `json:"longest_win_streak"`
}

// NewMatchStats returns empty statistics.
func NewMatchStats() *MatchStats {
	return &MatchStats{}
}

// WinRate returns the win rate as a percentage (0-100).
func (s *MatchStats) WinRate() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Played) * 100
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// Open opens (or creates) the database at dir.
func Open(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves user preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastPlayed = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads user preferences, returning defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// SaveStats saves match statistics.
func (s *Storage) SaveStats(stats *MatchStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyStats), data)
	})
}

// LoadStats loads match statistics, returning empty stats if not found.
func (s *Storage) LoadStats() (*MatchStats, error) {
	stats := NewMatchStats()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyStats))
		if err == badger.ErrKeyNotFound {
			return nil // use empty stats
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, stats)
		})
	})

	return stats, err
}

// RecordMatch records a completed match and updates the statistics.
func (s *Storage) RecordMatch(outcome Outcome, hitMoveLimit bool) error {
	stats, err := s.LoadStats()
	if err != nil {
		return err
	}

	stats.Played++
	if hitMoveLimit {
		stats.MoveLimitEnds++
	}

	switch outcome {
	case OutcomeWin:
		stats.Wins++
		stats.CurrentStreak++
		if stats.CurrentStreak > stats.LongestWinStrk {
			stats.LongestWinStrk = stats.CurrentStreak
		}
	case OutcomeLoss:
		stats.Losses++
		stats.CurrentStreak = 0
	case OutcomeDraw:
		stats.Draws++
		stats.CurrentStreak = 0
	}

	return s.SaveStats(stats)
}
