// Package chatstore keeps agent-chat history in a local SQLite database.
// Conversations live only on the user's machine; nothing here touches the
// chain.
package chatstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	_ "modernc.org/sqlite"

	"github.com/niklabh/AptosAgora/internal/types"
)

// Store persists conversations and messages.
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

// Conversation groups the messages exchanged with one agent.
type Conversation struct {
	ID        string
	AgentID   string
	CreatedAt int64
}

// Open creates (or reuses) the database at dbPath and runs migrations.
func Open(dbPath string, logger zerolog.Logger) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create database directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}

	// SQLite wants a single writer connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	s := &Store{db: db, logger: logger}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("database migration failed: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS conversations (
		id          TEXT PRIMARY KEY,
		agent_id    TEXT NOT NULL,
		created_at  INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_conversations_agent ON conversations(agent_id, created_at);

	CREATE TABLE IF NOT EXISTS messages (
		id              TEXT PRIMARY KEY,
		conversation_id TEXT NOT NULL REFERENCES conversations(id) ON DELETE CASCADE,
		sender          TEXT NOT NULL,
		text            TEXT NOT NULL,
		created_at      INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_messages_conv ON messages(conversation_id, created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// StartConversation opens a new conversation with an agent.
func (s *Store) StartConversation(ctx context.Context, agentID string) (*Conversation, error) {
	if agentID == "" {
		return nil, fmt.Errorf("agentId is required")
	}
	conv := &Conversation{
		ID:        uuid.NewString(),
		AgentID:   agentID,
		CreatedAt: time.Now().Unix(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversations (id, agent_id, created_at) VALUES (?, ?, ?)`,
		conv.ID, conv.AgentID, conv.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("start conversation: %w", err)
	}
	s.logger.Debug().Str("conversation", conv.ID).Str("agent", agentID).Msg("chatstore: conversation started")
	return conv, nil
}

// AppendMessage records one turn. sender must be "user" or "agent".
func (s *Store) AppendMessage(ctx context.Context, conversationID, sender, text string) (*types.ChatMessage, error) {
	if sender != "user" && sender != "agent" {
		return nil, fmt.Errorf("invalid sender %q", sender)
	}
	msg := &types.ChatMessage{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Sender:         sender,
		Text:           text,
		CreatedAt:      time.Now().Unix(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO messages (id, conversation_id, sender, text, created_at) VALUES (?, ?, ?, ?, ?)`,
		msg.ID, msg.ConversationID, msg.Sender, msg.Text, msg.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	return msg, nil
}

// Messages returns a conversation's messages in chronological order.
func (s *Store) Messages(ctx context.Context, conversationID string) ([]types.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, conversation_id, sender, text, created_at
		 FROM messages WHERE conversation_id = ? ORDER BY created_at, id`,
		conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []types.ChatMessage
	for rows.Next() {
		var m types.ChatMessage
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.Sender, &m.Text, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Conversations lists conversations for an agent, newest first.
func (s *Store) Conversations(ctx context.Context, agentID string) ([]Conversation, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, agent_id, created_at FROM conversations
		 WHERE agent_id = ? ORDER BY created_at DESC`,
		agentID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Conversation
	for rows.Next() {
		var c Conversation
		if err := rows.Scan(&c.ID, &c.AgentID, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
