package shell

const (
	cmdHelp = "help"
	cmdEcho = "echo"
	cmdLED  = "led"
	cmdPin  = "pin"
	cmdRegs = "regs"
	cmdUART = "uart"
)

// commandList fixes the order help prints in.
var commandList = []string{cmdHelp, cmdEcho, cmdLED, cmdPin, cmdRegs, cmdUART}

var help = map[string]string{
	cmdHelp: "List commands, or show help for one: help [command]",
	cmdEcho: "Print the arguments: echo [text...]",
	cmdLED:  "Drive the activity LED: led on|off|toggle",
	cmdPin:  "Configure or drive a GPIO: pin <n> out|in|high|low|get",
	cmdRegs: "Dump the console UART registers",
	cmdUART: "Show the selected UART engine and receive status",
}
