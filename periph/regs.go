package periph

// Register addresses of the PRISM peripheral, word aligned.
const (
	RegCtrl    uint32 = 0x00 // control/status
	RegTabData uint32 = 0x10 // table data word; committing it finalizes one entry
	RegTabSel  uint32 = 0x14 // table select word; written immediately before the data word
	RegXfer    uint32 = 0x18 // transfer control; nonzero-then-zero pulse
	RegTxData  uint32 = 0x20 // output shift data
	RegRxData  uint32 = 0x24 // input shift data
)

// CtrlReset holds the peripheral in reset while set. The rest of the control
// word is configuration payload, stored and read back verbatim.
const CtrlReset uint32 = 1 << 30

// XferStart is the transfer start value observed on the reference board. Any
// nonzero write to RegXfer triggers; zero rearms.
const XferStart uint32 = 0x03000000

// TableLen is the number of entries in a state information table.
const TableLen = 8

// XferWidth is the bit width of one serial transfer.
const XferWidth = 24

// Timing, in clock ticks.
const (
	// ResetHoldTicks is how long Reset holds the bus reset line low.
	ResetHoldTicks = 10
	// ResetSettleTicks is the delay after releasing the reset line before
	// the first register operation.
	ResetSettleTicks = 2
	// WordOpTicks is the cost of one word-granular register transaction.
	WordOpTicks = 8
	// ByteOpTicks is the cost of one byte-granular register transaction.
	ByteOpTicks = 4
	// SettleTicks is the settling window after a transfer trigger before
	// the shift data registers and the externally latched output are valid.
	SettleTicks = 2*XferWidth + 8
)
