package storage

import (
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Tracker records level completions of one player session in a Store.
// It implements core.ProgressTracker.
type Tracker struct {
	store     *Store
	player    string
	sessionID string
	logger    *log.Logger
}

// NewTracker creates a tracker with a fresh session ID.
// A nil logger drops write errors silently.
func NewTracker(store *Store, player string, logger *log.Logger) *Tracker {
	return &Tracker{
		store:     store,
		player:    player,
		sessionID: uuid.NewString(),
		logger:    logger,
	}
}

// Player returns the player name completions are recorded under.
func (t *Tracker) Player() string {
	return t.player
}

// SessionID returns the ID shared by every completion of this session.
func (t *Tracker) SessionID() string {
	return t.sessionID
}

// LevelCompleted stores a completion. Failures are logged, never returned,
// so a broken database does not interrupt play.
func (t *Tracker) LevelCompleted(levelID string, moves int) {
	_, err := t.store.RecordCompletion(Completion{
		Player:    t.player,
		SessionID: t.sessionID,
		LevelID:   levelID,
		Moves:     moves,
	})
	if err != nil && t.logger != nil {
		t.logger.Error("failed to record completion", "level", levelID, "player", t.player, "err", err)
		return
	}
	if t.logger != nil {
		t.logger.Debug("level completed", "level", levelID, "moves", moves, "player", t.player, "session", t.sessionID)
	}
}
