package storage

import (
	"encoding/hex"
	"fmt"
	"time"
)

// Command is one frame sent to a controller, as stored in the database.
type Command struct {
	CommandID  int64
	SessionID  string
	SentAt     time.Time
	DeviceName string
	Operation  string
	FrameHex   string
}

// Frame decodes the stored frame bytes.
func (c Command) Frame() ([]byte, error) {
	return hex.DecodeString(c.FrameHex)
}

// CommandRepository provides access to the sent-command log.
type CommandRepository struct {
	db *DB
}

// NewCommandRepository creates a new command repository.
func NewCommandRepository(db *DB) *CommandRepository {
	return &CommandRepository{db: db}
}

// Record stores one sent frame and returns its ID.
func (r *CommandRepository) Record(sessionID, deviceName, operation string, frame []byte) (int64, error) {
	result, err := r.db.Exec(`
		INSERT INTO commands (session_id, sent_at, device_name, operation, frame_hex)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, time.Now().UTC().Format(time.RFC3339Nano), deviceName, operation, hex.EncodeToString(frame))

	if err != nil {
		return 0, fmt.Errorf("failed to record command: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get command ID: %w", err)
	}

	return id, nil
}

// ListRecent returns the most recently sent commands, newest first.
func (r *CommandRepository) ListRecent(limit int) ([]Command, error) {
	rows, err := r.db.Query(`
		SELECT command_id, session_id, sent_at, device_name, operation, frame_hex
		FROM commands
		ORDER BY command_id DESC
		LIMIT ?
	`, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to list commands: %w", err)
	}
	defer rows.Close()

	var commands []Command
	for rows.Next() {
		var c Command
		var sentAt string
		if err := rows.Scan(&c.CommandID, &c.SessionID, &sentAt, &c.DeviceName, &c.Operation, &c.FrameHex); err != nil {
			return nil, fmt.Errorf("failed to scan command: %w", err)
		}
		c.SentAt, err = time.Parse(time.RFC3339Nano, sentAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse timestamp %q: %w", sentAt, err)
		}
		commands = append(commands, c)
	}

	return commands, rows.Err()
}
