package backend

import "errors"

var (
	// ErrNotFound indicates the handle did not resolve to stored content.
	ErrNotFound = errors.New("backend: content not found")

	// ErrUnavailable indicates the backend client is not initialized or
	// not reachable.
	ErrUnavailable = errors.New("backend: client unavailable")

	// ErrTransport classifies a generic network or backend fault
	// re-surfaced from an injected client.
	ErrTransport = errors.New("backend: transport failure")

	// ErrInvalidFileID indicates a string is not a shard.realm.num triplet.
	ErrInvalidFileID = errors.New("backend: invalid file id")

	// ErrEmptyContent indicates an attempt to store empty content.
	ErrEmptyContent = errors.New("backend: content is empty")
)
