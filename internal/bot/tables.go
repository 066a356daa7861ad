package bot

import (
	"sync"

	"github.com/nahuelkryc0405/Black-Jack-Game/internal/game"
)

// Table is one chat's session and its round in progress. Updates for a chat
// arrive on separate goroutines, so callers hold mu while playing.
type Table struct {
	mu      sync.Mutex
	Session *game.Session
	Round   *game.Round
}

// InRound reports whether a round is dealt and not yet resolved.
func (t *Table) InRound() bool {
	return t.Round != nil && t.Round.Phase() != game.PhaseResolved
}

// Tables holds the active table of every chat.
type Tables struct {
	tables map[int64]*Table
	mu     sync.RWMutex
}

func NewTables() *Tables {
	return &Tables{
		tables: make(map[int64]*Table),
	}
}

func (m *Tables) Get(chatID int64) *Table {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.tables[chatID]
}

// GetOrCreate returns the chat's table, building its session with newSession
// the first time.
func (m *Tables) GetOrCreate(chatID int64, newSession func() *game.Session) *Table {
	if t := m.Get(chatID); t != nil {
		return t
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tables[chatID]; ok {
		return t
	}

	t := &Table{Session: newSession()}
	m.tables[chatID] = t
	return t
}

func (m *Tables) Delete(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tables, chatID)
}
