package database

import (
    "context"
    "log"
)

// EnsureSchema creates required tables if they do not exist.
func EnsureSchema() {
    if Pool == nil {
        return
    }
    ctx := context.Background()

    stmts := []string{
        `CREATE TABLE IF NOT EXISTS sessions (
            id TEXT PRIMARY KEY,
            data JSONB NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
        `CREATE TABLE IF NOT EXISTS conversation_messages (
            id BIGSERIAL PRIMARY KEY,
            session_id TEXT NOT NULL,
            message_id TEXT NOT NULL,
            sender TEXT NOT NULL,
            content TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        )`,
        `CREATE INDEX IF NOT EXISTS conversation_messages_session_idx ON conversation_messages(session_id, id)`,
    }

    for _, s := range stmts {
        if _, err := Pool.Exec(ctx, s); err != nil {
            log.Printf("schema ensure error: %v in stmt: %s", err, s)
        }
    }
}
