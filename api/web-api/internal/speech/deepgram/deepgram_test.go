package internal_speech_deepgram

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/prepwise/pkg/commons"
	"github.com/prepwise/pkg/utils"
)

func newTestLogger(t *testing.T) commons.Logger {
	t.Helper()
	return commons.NewLogger("deepgram-test", "error", "")
}

// --- Constructor Tests ---

func TestNewDeepgramOption_ValidKey(t *testing.T) {
	opt, err := NewDeepgramOption(newTestLogger(t), "test-api-key", utils.Option{})
	assert.NoError(t, err)
	assert.NotNil(t, opt)
	assert.Equal(t, "test-api-key", opt.GetKey())
}

func TestNewDeepgramOption_MissingKey(t *testing.T) {
	opt, err := NewDeepgramOption(newTestLogger(t), "   ", utils.Option{})
	assert.Error(t, err)
	assert.Nil(t, opt)
	assert.Contains(t, err.Error(), "missing api key")
}

func TestNewTranscriber_MissingKey(t *testing.T) {
	tr, err := NewTranscriber(newTestLogger(t), "", utils.Option{})
	assert.Error(t, err)
	assert.Nil(t, tr)
}

// --- TranscriptionOptions Tests ---

func TestTranscriptionOptions_Defaults(t *testing.T) {
	opt, _ := NewDeepgramOption(newTestLogger(t), "k", utils.Option{})
	options := opt.TranscriptionOptions()
	assert.Equal(t, DefaultModel, options.Model)
	assert.Equal(t, DefaultLanguage, options.Language)
	assert.True(t, options.SmartFormat)
	assert.True(t, options.Punctuate)
}

func TestTranscriptionOptions_Overrides(t *testing.T) {
	opt, _ := NewDeepgramOption(newTestLogger(t), "k", utils.Option{
		"listen.model":    "nova-3",
		"listen.language": "de",
	})
	options := opt.TranscriptionOptions()
	assert.Equal(t, "nova-3", options.Model)
	assert.Equal(t, "de", options.Language)
}
