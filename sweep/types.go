package sweep

// Record is a single prominence record: a peak, its prominence, and —
// unless the peak is sea-level bound — the key col that bounds it.
//
// HasCol marks whether ColIdx/ColElev are meaningful, since Go has no
// nullable primitive int: when HasCol is false, ColIdx and ColElev are
// zero and must be ignored, and Prom == PeakElev.
type Record struct {
	Prom     int32
	PeakIdx  int32
	PeakElev int32
	ColIdx   int32
	ColElev  int32
	HasCol   bool
}

// Sink receives every prominence record as it is emitted, in emission
// order (not final ranking order). topk.Collector implements Sink.
type Sink interface {
	Insert(Record)
}
