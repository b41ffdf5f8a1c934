//go:build !baremetal

package sim

// maxDepth bounds every modeled FIFO. It is a power of two so the indices
// wrap with a mask.
const maxDepth = 32

// FIFO is a fixed-depth byte queue. head and tail run freely and their
// difference is the fill level.
type FIFO struct {
	buf        [maxDepth]byte
	head, tail uint8
	depth      uint8
}

// NewFIFO returns an empty FIFO holding at most depth bytes (1..32).
func NewFIFO(depth int) FIFO {
	if depth < 1 || depth > maxDepth {
		panic("sim: FIFO depth out of range")
	}
	return FIFO{depth: uint8(depth)}
}

// Depth returns the capacity in bytes.
func (f *FIFO) Depth() int { return int(f.depth) }

// Used returns how many bytes are queued.
func (f *FIFO) Used() int { return int(f.head - f.tail) }

func (f *FIFO) Full() bool  { return f.Used() == int(f.depth) }
func (f *FIFO) Empty() bool { return f.head == f.tail }

// Put queues b. It returns false, dropping b, when the FIFO is full.
func (f *FIFO) Put(b byte) bool {
	if f.Full() {
		return false
	}
	f.buf[f.head&(maxDepth-1)] = b
	f.head++
	return true
}

// Get dequeues the oldest byte, or returns (0, false) when empty.
func (f *FIFO) Get() (byte, bool) {
	if f.Empty() {
		return 0, false
	}
	b := f.buf[f.tail&(maxDepth-1)]
	f.tail++
	return b, true
}

// Clear drops everything queued.
func (f *FIFO) Clear() { f.head, f.tail = 0, 0 }
