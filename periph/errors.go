package periph

import (
	"github.com/pkg/errors"
)

// Error kinds surfaced by the register and protocol layers. They are
// returned wrapped with context; match with errors.Cause.
var (
	// ErrSequence reports an operation attempted out of protocol order.
	ErrSequence = errors.New("operation out of sequence")

	// ErrReadback reports a register readback disagreeing with the value
	// written. This indicates a protocol defect and is never retried.
	ErrReadback = errors.New("readback mismatch")

	// ErrBusy reports access to a transfer result, or a new trigger,
	// before the settling window of the pending transfer elapsed.
	ErrBusy = errors.New("transfer settling")
)
