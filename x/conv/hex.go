package conv

const (
	hexUpper = "0123456789ABCDEF"
	hexLower = "0123456789abcdef"
)

// U32Hex writes 8-digit uppercase hex without 0x, zero-padded.
func U32Hex(buf []byte, n uint32) []byte {
	if len(buf) < 8 {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < 8; j++ {
		i--
		buf[i] = hexUpper[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// Hex writes n in hex with no leading zeros (at least one digit) at the end
// of buf. buf should be length >= 16.
func Hex(buf []byte, n uint64, upper bool) []byte {
	digits := hexLower
	if upper {
		digits = hexUpper
	}
	i := len(buf)
	for i > 0 {
		i--
		buf[i] = digits[n&0xF]
		n >>= 4
		if n == 0 {
			break
		}
	}
	return buf[i:]
}
