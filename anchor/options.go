package anchor

// OpenListKind selects the chain-A* open-list implementation, mirroring
// astar's two implementations and the CLI's --chaining-open-list flag.
type OpenListKind int

const (
	// OpenListBinaryHeap uses astar.BinaryHeap (the default).
	OpenListBinaryHeap OpenListKind = iota
	// OpenListBucketQueue uses astar.BucketQueue, preferred per spec §4.6
	// when costs are small integers.
	OpenListBucketQueue
)

// Options bundles the chain-align tuning knobs of spec §4.6 and §6's CLI
// surface (--k, --max-chaining-successors, --chaining-open-list), assembled
// via the functional-options pattern (NewOptions with the With* option
// functions).
type Options struct {
	K                     int
	MaxChainingSuccessors int
	ChainingOpenList      OpenListKind
}

// Option configures an Options value before chaining begins.
type Option func(*Options)

// DefaultOptions returns the baseline chain-align configuration: k=16, no
// successor cap, binary-heap open list.
func DefaultOptions() Options {
	return Options{K: 16, MaxChainingSuccessors: 0, ChainingOpenList: OpenListBinaryHeap}
}

// WithK sets the k-mer length used for anchor seeding.
func WithK(k int) Option {
	return func(o *Options) { o.K = k }
}

// WithMaxChainingSuccessors caps how many outgoing chain edges are
// considered per anchor (0 means unbounded), per
// lib_ts_chainalign/performance_parameters.rs's max_chaining_successors,
// carried per spec §12.
func WithMaxChainingSuccessors(n int) Option {
	return func(o *Options) { o.MaxChainingSuccessors = n }
}

// WithChainingOpenList selects the open-list implementation for chain-A*.
func WithChainingOpenList(kind OpenListKind) Option {
	return func(o *Options) { o.ChainingOpenList = kind }
}

// NewOptions builds an Options from DefaultOptions with opts applied in
// order.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
