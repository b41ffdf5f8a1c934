package gpio

// Pin methods act on Default, the board's GPIO block.

// Configure sets the pin function.
func (p Pin) Configure(fn Function) { Default.SetFunction(p, fn) }

// SetOutput configures the pin as an output.
func (p Pin) SetOutput() { Default.SetOutput(p) }

// High drives the pin high.
func (p Pin) High() { Default.SetHigh(p) }

// Low drives the pin low.
func (p Pin) Low() { Default.SetLow(p) }

// Set drives the pin to level.
func (p Pin) Set(level bool) { Default.Set(p, level) }

// Get reads the pin level.
func (p Pin) Get() bool { return Default.Get(p) }
