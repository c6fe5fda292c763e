package mitab

// MemWriter collects written features in memory and assigns sequential
// identifiers starting at 1. It backs tests and in-process pipelines; the
// on-disk record codecs provide RecordWriter implementations elsewhere.
type MemWriter struct {
	features []*Feature
	nextID   int64
}

// NewMemWriter returns an empty in-memory writer.
func NewMemWriter() *MemWriter {
	return &MemWriter{nextID: 1}
}

// WriteFeature stores f and assigns the next identifier.
func (w *MemWriter) WriteFeature(f *Feature) (int64, error) {
	f.id = w.nextID
	w.nextID++
	w.features = append(w.features, f)
	return f.id, nil
}

// Features returns the written features in write order.
func (w *MemWriter) Features() []*Feature { return w.features }

// Len returns the number of written features.
func (w *MemWriter) Len() int { return len(w.features) }
