// Package ports defines interfaces for external dependencies.
// Clean Architecture: These are the boundaries - usecases depend on these abstractions,
// not concrete implementations. Adapters implement these interfaces.
package ports

import (
	"context"
	"errors"

	"github.com/svpcet/campus-compass/internal/domain/entities"
)

// Failure taxonomy for a navigation turn. Each failure is local to a single
// request; none of them touch existing session table entries.
var (
	// ErrEmptyMessage rejects a turn whose user message has no content.
	ErrEmptyMessage = errors.New("user message is empty")

	// ErrSessionNotFound means the supplied chat id has no table entry.
	// The client must start a new conversation by omitting the id.
	ErrSessionNotFound = errors.New("chat not found")

	// ErrInvalidSession means the table held an entry that is not a usable
	// session handle. Signals internal corruption, never retried.
	ErrInvalidSession = errors.New("chat instance is not valid")

	// ErrEmptyModelReply means the model returned no extractable text.
	ErrEmptyModelReply = errors.New("empty response from model")
)

// LocationStore holds the campus points of interest.
// The request path only ever reads; Seed exists for the seeding tooling.
type LocationStore interface {
	// ListAll returns every stored location. Order is unspecified
	// (insertion order in practice).
	ListAll(ctx context.Context) ([]entities.Location, error)

	// Seed replaces the full set of stored locations.
	Seed(ctx context.Context, locations []entities.Location) error
}

// ChatSession is one live multi-turn conversation held by the external model.
// The model retains the history internally; the router only forwards the
// latest user message.
type ChatSession interface {
	// Send forwards one user message and returns the reply text extracted
	// from the model's response envelope. Returns ErrEmptyModelReply when
	// the envelope carries no usable text.
	Send(ctx context.Context, message string) (string, error)
}

// ChatModel opens grounded conversations with the external model.
type ChatModel interface {
	// StartChat opens a new session seeded with the grounding instruction
	// and constrained to the structured reply shape.
	StartChat(ctx context.Context, instruction string) (ChatSession, error)
}

// SessionStore maps generated chat identifiers to live sessions.
// Identifiers are never reused and entries are never evicted; the table
// lives and dies with the process. Implementations must be safe for
// concurrent use and must serialize turns on a single identifier.
type SessionStore interface {
	// Create records the session under a fresh unique identifier and
	// returns that identifier.
	Create(session ChatSession) string

	// Get looks up a previously returned identifier.
	Get(id string) (ChatSession, bool)
}

// LocationLoader reads location records from a seed source.
type LocationLoader interface {
	Load(path string) ([]entities.Location, error)
}

// FileWatcher monitors one file for changes.
type FileWatcher interface {
	// Watch starts monitoring the file and emits its change events.
	Watch(ctx context.Context, path string) (<-chan FileEvent, error)

	// Stop stops the watcher.
	Stop() error
}

// FileEvent represents a file system change.
type FileEvent struct {
	Path      string
	Operation FileOperation
}

// FileOperation is the type of file change.
type FileOperation int

const (
	FileCreated FileOperation = iota
	FileModified
	FileDeleted
)
