package event

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/osse101/SpinForge_Go/internal/logger"
)

// DeadLetterSchemaVersion versions the DeadLetterEntry line format
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one line of the dead-letter file
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// DeadLetterWriter appends undeliverable events to a JSON-lines file
type DeadLetterWriter struct {
	mu   sync.Mutex
	file *os.File
	enc  *json.Encoder
	now  func() time.Time
}

// NewDeadLetterWriter opens path for appending, creating it when missing
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgOpenDeadLetter, path, err)
	}
	return &DeadLetterWriter{file: f, enc: json.NewEncoder(f), now: time.Now}, nil
}

// Write appends one entry. Each entry is a single line.
func (dlw *DeadLetterWriter) Write(evt Event, attempts int, lastError error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Event:         evt,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	dlw.mu.Lock()
	defer dlw.mu.Unlock()

	entry.Timestamp = dlw.now().UTC()
	if err := dlw.enc.Encode(entry); err != nil {
		return err
	}
	logger.Warn(LogMsgEventDeadLettered, "event_type", evt.Type, "attempts", attempts, "error", lastError)
	return nil
}

// Close flushes the file to disk and closes it
func (dlw *DeadLetterWriter) Close() error {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	return errors.Join(dlw.file.Sync(), dlw.file.Close())
}

// ReadDeadLetters loads every entry of a dead-letter file, oldest first.
// Payloads come back as generic JSON; use DecodePayload to type them.
func ReadDeadLetters(path string) ([]DeadLetterEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgOpenDeadLetter, path, err)
	}
	defer f.Close()

	var entries []DeadLetterEntry
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for line := 1; scanner.Scan(); line++ {
		if len(scanner.Bytes()) == 0 {
			continue
		}
		var e DeadLetterEntry
		if err := json.Unmarshal(scanner.Bytes(), &e); err != nil {
			return entries, fmt.Errorf("%s line %d: %w", ErrMsgParseDeadLetter, line, err)
		}
		entries = append(entries, e)
	}
	return entries, scanner.Err()
}
