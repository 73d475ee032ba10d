package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/vocab"
)

func newTestEncoder(t *testing.T) *Encoder {
	t.Helper()
	params, err := NewInitializedParameters(testConfig(), testTerms(), 42)
	require.NoError(t, err)
	enc, err := New(params)
	require.NoError(t, err)
	return enc
}

func TestNew_InvalidParameters(t *testing.T) {
	params, err := NewInitializedParameters(testConfig(), testTerms(), 42)
	require.NoError(t, err)
	params.Config.NumHeads = 3

	_, err = New(params)
	var configErr *ConfigError
	assert.ErrorAs(t, err, &configErr)
}

func TestEmbed_Shapes(t *testing.T) {
	enc := newTestEncoder(t)

	contextual, pooled, err := enc.Embed("senior python engineer", 6)
	require.NoError(t, err)

	rows, cols := contextual.Dims()
	assert.Equal(t, 6, rows)
	assert.Equal(t, enc.Config().HiddenDim, cols)
	assert.Len(t, pooled, enc.Config().HiddenDim)
}

func TestEmbed_Deterministic(t *testing.T) {
	enc := newTestEncoder(t)

	_, first, err := enc.Embed("python docker aws", 8)
	require.NoError(t, err)
	_, second, err := enc.Embed("python docker aws", 8)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEmbed_PaddingDoesNotAffectPooled(t *testing.T) {
	enc := newTestEncoder(t)

	short, err := enc.EmbedPooled("python docker", 2)
	require.NoError(t, err)
	padded, err := enc.EmbedPooled("python docker", 10)
	require.NoError(t, err)

	require.Len(t, padded, len(short))
	for i := range short {
		assert.InDelta(t, short[i], padded[i], 1e-9)
	}
}

func TestEmbed_EmptyText(t *testing.T) {
	enc := newTestEncoder(t)

	_, _, err := enc.Embed("   \t  ", 4)
	var encodingErr *EncodingError
	assert.ErrorAs(t, err, &encodingErr)
}

func TestEmbed_InvalidMaxLen(t *testing.T) {
	enc := newTestEncoder(t)

	_, _, err := enc.Embed("python", 0)
	var lengthErr *vocab.InvalidLengthError
	assert.ErrorAs(t, err, &lengthErr)
}

func TestEmbed_UnknownTokensStillEncode(t *testing.T) {
	enc := newTestEncoder(t)

	pooled, err := enc.EmbedPooled("completely unseen wording", 8)
	require.NoError(t, err)
	assert.Len(t, pooled, enc.Config().HiddenDim)
}

func TestLoad_RoundTripMatchesDirectEncoder(t *testing.T) {
	params, err := NewInitializedParameters(testConfig(), testTerms(), 42)
	require.NoError(t, err)
	direct, err := New(params)
	require.NoError(t, err)

	blob, err := params.Marshal()
	require.NoError(t, err)
	loaded, err := Load(blob)
	require.NoError(t, err)

	want, err := direct.EmbedPooled("senior python engineer", 8)
	require.NoError(t, err)
	got, err := loaded.EmbedPooled("senior python engineer", 8)
	require.NoError(t, err)

	assert.Equal(t, want, got)
}

func TestPositionalEncoding_Deterministic(t *testing.T) {
	first := PositionalEncoding(10, 8)
	second := PositionalEncoding(10, 8)

	assert.Equal(t, first.RawRowView(7), second.RawRowView(7))
}

func TestPositionalEncoding_KnownValues(t *testing.T) {
	pe := PositionalEncoding(4, 8)

	// Position 0: sin(0) = 0 on even channels, cos(0) = 1 on odd channels.
	assert.InDelta(t, 0.0, pe.At(0, 0), 1e-12)
	assert.InDelta(t, 1.0, pe.At(0, 1), 1e-12)
	assert.InDelta(t, 0.0, pe.At(0, 6), 1e-12)
	assert.InDelta(t, 1.0, pe.At(0, 7), 1e-12)
}
