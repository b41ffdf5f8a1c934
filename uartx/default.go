// uartx/default.go

package uartx

// Default is the console UART on the board's fixed blocks.
var Default = New(Selected, DefaultBlocks())

// Init brings up Default with 115200 8N1 on GPIO 14/15.
func Init() { Default.Init() }

func WriteByte(c byte) error { return Default.WriteByte(c) }

func WriteString(s string) (int, error) { return Default.WriteString(s) }

func TryReadByte() (byte, bool) { return Default.TryReadByte() }

func ReadLine(buf []byte) (n int, ok bool) { return Default.ReadLine(buf) }

func Flush() error { return Default.Flush() }

func IsDataReady() bool { return Default.IsDataReady() }
