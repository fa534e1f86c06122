package stats

// Collector accumulates inference metrics across the moves of a single
// game. All methods are nil-safe so instrumented code never needs to guard
// against a missing collector.
type Collector struct {
	moves int

	kbTotalSize int
	kbMaxSize   int
	kbSamples   int

	inferencesTotal int
	inferencesMax   int

	comparisonsTotal int
	comparisonsMax   int
	comparisonsCount int

	iterationsTotal int
	iterationsMax   int
	iterationsCount int

	duplicatesTotal int
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// BeginMove marks the start of a new add-knowledge cycle.
func (c *Collector) BeginMove() {
	if c == nil {
		return
	}
	c.moves++
}

// RecordKBSize records the knowledge base size after a cleanup pass.
func (c *Collector) RecordKBSize(size int) {
	if c == nil {
		return
	}
	c.kbTotalSize += size
	c.kbSamples++
	if size > c.kbMaxSize {
		c.kbMaxSize = size
	}
}

// RecordInferences records the number of sentences derived in one subset
// inference pass.
func (c *Collector) RecordInferences(n int) {
	if c == nil {
		return
	}
	c.inferencesTotal += n
	if n > c.inferencesMax {
		c.inferencesMax = n
	}
}

// RecordComparisons records the number of subset comparisons performed in
// one inference pass.
func (c *Collector) RecordComparisons(n int) {
	if c == nil {
		return
	}
	c.comparisonsTotal += n
	c.comparisonsCount++
	if n > c.comparisonsMax {
		c.comparisonsMax = n
	}
}

// RecordDuplicates records duplicate sentences dropped during cleanup.
func (c *Collector) RecordDuplicates(n int) {
	if c == nil {
		return
	}
	c.duplicatesTotal += n
}

// RecordClosure records the number of fixed-point loop iterations one
// add-knowledge cycle needed.
func (c *Collector) RecordClosure(iterations int) {
	if c == nil {
		return
	}
	c.iterationsTotal += iterations
	c.iterationsCount++
	if iterations > c.iterationsMax {
		c.iterationsMax = iterations
	}
}

// Summary is an immutable snapshot of collected metrics.
type Summary struct {
	Moves int `json:"moves"`

	KBAvgSize float64 `json:"kb_avg_size"`
	KBMaxSize int     `json:"kb_max_size"`

	InferencesTotal int `json:"inferences_total"`
	InferencesMax   int `json:"inferences_max"`

	ComparisonsAvg   float64 `json:"comparisons_avg"`
	ComparisonsMax   int     `json:"comparisons_max"`
	ComparisonsTotal int     `json:"comparisons_total"`

	// InferenceRatio is inferences per subset comparison, a measure of how
	// much useful work the inference pass extracts from its scanning.
	InferenceRatio float64 `json:"inference_ratio"`

	IterationsAvg   float64 `json:"iterations_avg"`
	IterationsMax   int     `json:"iterations_max"`
	IterationsTotal int     `json:"iterations_total"`

	DuplicatesTotal int `json:"duplicates_total"`
}

// Summary returns a snapshot of the collected metrics. Safe on a nil
// collector, which yields a zero summary.
func (c *Collector) Summary() Summary {
	if c == nil {
		return Summary{}
	}

	s := Summary{
		Moves:            c.moves,
		KBMaxSize:        c.kbMaxSize,
		InferencesTotal:  c.inferencesTotal,
		InferencesMax:    c.inferencesMax,
		ComparisonsMax:   c.comparisonsMax,
		ComparisonsTotal: c.comparisonsTotal,
		IterationsMax:    c.iterationsMax,
		IterationsTotal:  c.iterationsTotal,
		DuplicatesTotal:  c.duplicatesTotal,
	}
	if c.kbSamples > 0 {
		s.KBAvgSize = float64(c.kbTotalSize) / float64(c.kbSamples)
	}
	if c.comparisonsCount > 0 {
		s.ComparisonsAvg = float64(c.comparisonsTotal) / float64(c.comparisonsCount)
	}
	if c.comparisonsTotal > 0 {
		s.InferenceRatio = float64(c.inferencesTotal) / float64(c.comparisonsTotal)
	}
	if c.iterationsCount > 0 {
		s.IterationsAvg = float64(c.iterationsTotal) / float64(c.iterationsCount)
	}
	return s
}

// Reset clears all metrics back to their initial values.
func (c *Collector) Reset() {
	if c == nil {
		return
	}
	*c = Collector{}
}
