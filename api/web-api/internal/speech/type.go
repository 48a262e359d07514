// Copyright (c) 2025-2026 Prepwise
// Author: Prepwise Engineering <engineering@prepwise.app>
//
// Licensed under the MIT License.
// See LICENSE.md for details.

package internal_speech

import "context"

// Transcriber converts a recorded answer into text. Audio arrives as a whole
// clip (the browser records, then posts), so implementations use the
// pre-recorded endpoints of their providers rather than streaming ones.
type Transcriber interface {
	// Transcribe returns the transcript of the audio clip. filename carries
	// the extension the provider uses to sniff the container format.
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
}

// Synthesizer converts coach text (question, evaluation, feedback, summary)
// into playable audio.
type Synthesizer interface {
	// Synthesize returns MP3 audio for the given text.
	Synthesize(ctx context.Context, text string) ([]byte, error)
}
