package vocab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ReservedTokensFirst(t *testing.T) {
	v, err := New([]string{"python", "docker"}, 100)
	require.NoError(t, err)

	assert.Equal(t, PadID, v.ID(PadToken))
	assert.Equal(t, UnkID, v.ID(UnkToken))
	assert.Equal(t, StartID, v.ID(StartToken))
	assert.Equal(t, EndID, v.ID(EndToken))
	assert.Equal(t, MaskID, v.ID(MaskToken))
	assert.Equal(t, 5, v.ID("python"))
	assert.Equal(t, 6, v.ID("docker"))
	assert.Equal(t, 7, v.Size())
}

func TestNew_CapacityTooSmall(t *testing.T) {
	_, err := New([]string{"python"}, 5)
	assert.Error(t, err)
}

func TestNew_CapacityBoundsTerms(t *testing.T) {
	v, err := New([]string{"a", "b", "c", "d"}, 7)
	require.NoError(t, err)

	// Only two terms fit after the five reserved tokens.
	assert.Equal(t, 7, v.Size())
	assert.Equal(t, UnkID, v.ID("c"))
}

func TestNew_DeduplicatesTerms(t *testing.T) {
	v, err := New([]string{"python", "Python", "PYTHON"}, 100)
	require.NoError(t, err)

	assert.Equal(t, 6, v.Size())
}

func TestNewSeeded_ContainsCommonTerms(t *testing.T) {
	v, err := NewSeeded(DefaultCapacity)
	require.NoError(t, err)

	assert.NotEqual(t, UnkID, v.ID("python"))
	assert.NotEqual(t, UnkID, v.ID("docker"))
	assert.NotEqual(t, UnkID, v.ID("kubernetes"))
}

func TestNormalize_Idempotent(t *testing.T) {
	once := Normalize("  Senior Engineer, Python & Go!  ")
	twice := Normalize(once)

	assert.Equal(t, "senior engineer python go", Normalize("Senior Engineer, Python & Go!"))
	assert.Equal(t, once, twice)
}

func TestEncode_PadsToMaxLen(t *testing.T) {
	v, err := New([]string{"python", "docker"}, 100)
	require.NoError(t, err)

	seq, err := v.Encode("python docker", 5)
	require.NoError(t, err)

	assert.Equal(t, TokenSequence{5, 6, PadID, PadID, PadID}, seq)
	assert.Equal(t, 2, seq.NonPadding())
}

func TestEncode_TruncatesFromTail(t *testing.T) {
	v, err := New([]string{"a", "b", "c", "d", "e", "f"}, 100)
	require.NoError(t, err)

	seq, err := v.Encode("a b c d e f", 4)
	require.NoError(t, err)

	// Exactly four ids, all drawn from the first four tokens.
	assert.Len(t, seq, 4)
	assert.Equal(t, TokenSequence{v.ID("a"), v.ID("b"), v.ID("c"), v.ID("d")}, seq)
	assert.Equal(t, 4, seq.NonPadding())
}

func TestEncode_UnknownTokensMapToUnk(t *testing.T) {
	v, err := New([]string{"python"}, 100)
	require.NoError(t, err)

	seq, err := v.Encode("python zig", 3)
	require.NoError(t, err)

	assert.Equal(t, TokenSequence{v.ID("python"), UnkID, PadID}, seq)
}

func TestEncode_InvalidMaxLen(t *testing.T) {
	v, err := New([]string{"python"}, 100)
	require.NoError(t, err)

	_, err = v.Encode("python", 0)
	var lengthErr *InvalidLengthError
	assert.ErrorAs(t, err, &lengthErr)

	_, err = v.Encode("python", -3)
	assert.ErrorAs(t, err, &lengthErr)
}

func TestDecode_RoundTrip(t *testing.T) {
	v, err := New([]string{"senior", "python", "engineer"}, 100)
	require.NoError(t, err)

	seq, err := v.Encode("Senior Python Engineer", 8)
	require.NoError(t, err)

	assert.Equal(t, "senior python engineer", v.Decode(seq))
}

func TestDecode_RendersUnknownAsMarker(t *testing.T) {
	v, err := New([]string{"python"}, 100)
	require.NoError(t, err)

	seq, err := v.Encode("python zig", 4)
	require.NoError(t, err)

	assert.Equal(t, "python <UNK>", v.Decode(seq))
}

func TestDecode_StopsAtEndMarker(t *testing.T) {
	v, err := New([]string{"python", "docker"}, 100)
	require.NoError(t, err)

	seq := TokenSequence{v.ID("python"), EndID, v.ID("docker")}
	assert.Equal(t, "python", v.Decode(seq))
}

func TestPaddingMask(t *testing.T) {
	v, err := New([]string{"python"}, 100)
	require.NoError(t, err)

	seq, err := v.Encode("python", 3)
	require.NoError(t, err)

	assert.Equal(t, []bool{false, true, true}, seq.PaddingMask())
}
