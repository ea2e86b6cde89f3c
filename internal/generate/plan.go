package generate

// Batch is a half-open range [Start, End) of sample indices.
type Batch struct {
	Number int // zero-based
	Start  int
	End    int
}

// Size returns the number of samples in the batch.
func (b Batch) Size() int {
	return b.End - b.Start
}

// Plan partitions sample indices into ceil(sample/batch) contiguous
// batches. Every batch except possibly the last has exactly batch samples.
// A non-positive sample or batch size yields no batches.
func Plan(sample, batch int) []Batch {
	if sample <= 0 || batch <= 0 {
		return nil
	}
	n := (sample + batch - 1) / batch
	out := make([]Batch, 0, n)
	for i := 0; i < n; i++ {
		start := i * batch
		out = append(out, Batch{
			Number: i,
			Start:  start,
			End:    min(start+batch, sample),
		})
	}
	return out
}
