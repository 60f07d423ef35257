package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ledkit/bledom"
	"github.com/ledkit/bledom/internal/protocol"
	"github.com/ledkit/bledom/internal/storage"
)

// session bundles an acquired device with the command log for one CLI
// invocation. Logging is best-effort: a missing or broken database never
// blocks a command.
type session struct {
	dev  *bledom.Device
	db   *storage.DB
	repo *storage.CommandRepository
	id   string
}

// acquireDevice acquires a controller using the global retry flags and opens
// the command log.
func acquireDevice(ctx context.Context) (*session, error) {
	fmt.Println("Scanning for ELK-BLEDOM controllers...")

	dev, err := bledom.Acquire(ctx,
		bledom.WithScanRetries(scanRetries),
		bledom.WithScanInterval(time.Duration(scanIntervalMs)*time.Millisecond),
		bledom.WithConnectRetries(connectRetries),
		bledom.WithConnectInterval(time.Duration(connectIntervalMs)*time.Millisecond),
	)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Connected: %s\n", dev.Name())

	s := &session{dev: dev, id: uuid.New().String()}

	path := dbPath
	if path == "" {
		path, err = storage.DefaultDBPath()
	}
	if err == nil {
		s.db, err = storage.Open(path)
	}
	if err == nil {
		err = s.db.MigrateUp()
	}
	if err != nil {
		fmt.Printf("Warning: command log unavailable: %v\n", err)
		s.db = nil
	} else {
		s.repo = storage.NewCommandRepository(s.db)
	}

	return s, nil
}

// Close disconnects and releases the command log.
func (s *session) Close() {
	if s.db != nil {
		s.db.Close()
	}
	s.dev.Close()
}

// record logs a sent frame. The frame is re-encoded here from the same pure
// codec the device used, so the log matches the wire bytes exactly.
func (s *session) record(operation string, frame protocol.Frame, err error) {
	if err != nil || s.repo == nil {
		return
	}
	if _, rerr := s.repo.Record(s.id, s.dev.Name(), operation, frame.Bytes()); rerr != nil && verbose {
		fmt.Printf("Warning: failed to record command: %v\n", rerr)
	}
	if verbose {
		fmt.Printf("sent %s: % X\n", operation, frame.Bytes())
	}
}
