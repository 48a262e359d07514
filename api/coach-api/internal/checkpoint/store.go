// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_checkpoint

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no checkpoint exists for a thread.
var ErrNotFound = errors.New("checkpoint not found")

// Store persists opaque graph checkpoints keyed by thread id. A checkpoint is
// written after every node transition, so a crashed or restarted backend can
// resume an interview exactly where it paused. The engine owns the encoding;
// the store only moves bytes.
type Store interface {
	// Save writes (or overwrites) the checkpoint for a thread.
	Save(ctx context.Context, threadID string, data []byte) error

	// Get returns the checkpoint for a thread, or ErrNotFound.
	Get(ctx context.Context, threadID string) ([]byte, error)

	// Exists reports whether a checkpoint is present without reading it.
	Exists(ctx context.Context, threadID string) (bool, error)

	// Delete removes a thread's checkpoint. Deleting an absent thread is not
	// an error.
	Delete(ctx context.Context, threadID string) error
}
