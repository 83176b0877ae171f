package database

import (
    "context"
    "encoding/json"
    "errors"

    "github.com/jackc/pgx/v5"

    "github.com/BIG-PRIMEZ/mortgage-prequalification/models"
)

// GetSession loads a session record by key. A missing row returns a fresh
// session, not an error; the transport layer owns session lifetime.
func GetSession(ctx context.Context, id string) (models.SessionData, error) {
    var raw []byte
    err := Pool.QueryRow(ctx, `SELECT data FROM sessions WHERE id=$1`, id).Scan(&raw)
    if errors.Is(err, pgx.ErrNoRows) {
        return models.NewSessionData(), nil
    }
    if err != nil {
        return models.SessionData{}, err
    }
    var sess models.SessionData
    if err := json.Unmarshal(raw, &sess); err != nil {
        return models.SessionData{}, err
    }
    return sess, nil
}

func PutSession(ctx context.Context, id string, sess models.SessionData) error {
    raw, err := json.Marshal(sess)
    if err != nil {
        return err
    }
    _, err = Pool.Exec(ctx, `INSERT INTO sessions(id, data) VALUES($1, $2::jsonb)
        ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data, updated_at=now()`, id, string(raw))
    return err
}

func DeleteSession(ctx context.Context, id string) error {
    _, err := Pool.Exec(ctx, `DELETE FROM sessions WHERE id=$1`, id)
    return err
}

// AppendAuditMessage copies a turn into the append-only audit table. Best
// effort; failures are the caller's to log.
func AppendAuditMessage(ctx context.Context, sessionID string, msg models.Message) error {
    _, err := Pool.Exec(ctx,
        `INSERT INTO conversation_messages(session_id, message_id, sender, content) VALUES($1,$2,$3,$4)`,
        sessionID, msg.ID, string(msg.Sender), msg.Content)
    return err
}
