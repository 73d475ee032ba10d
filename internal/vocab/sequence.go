package vocab

// TokenSequence is a fixed-length sequence of token ids with padding at the
// tail only.
type TokenSequence []int

// PaddingMask returns a per-position mask that is true at padding positions.
func (s TokenSequence) PaddingMask() []bool {
	mask := make([]bool, len(s))
	for i, id := range s {
		mask[i] = id == PadID
	}
	return mask
}

// NonPadding returns the number of non-padding positions.
func (s TokenSequence) NonPadding() int {
	count := 0
	for _, id := range s {
		if id != PadID {
			count++
		}
	}
	return count
}
