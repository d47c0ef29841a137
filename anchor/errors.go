package anchor

import "errors"

// Sentinel errors for chain-align, mirroring the style of tsalign/errors.go
// and core's sentinel error block.
var (
	// ErrNoChain indicates the chaining search emptied its open list without
	// reaching End: no anchor-chain connects the sequences under the current
	// options (e.g. MaxChainingSuccessors pruned every path).
	ErrNoChain = errors.New("anchor: no chain found")

	// ErrInvalidK indicates a k-mer length outside [1, 32].
	ErrInvalidK = errors.New("anchor: k must be between 1 and 32")
)
