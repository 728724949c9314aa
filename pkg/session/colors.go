package session

// bold variants
const (
	ansiRed    = "1;31"
	ansiGreen  = "1;32"
	ansiYellow = "1;33"
	ansiCyan   = "1;36"
)

func colored(text string, color string) string {
	return "\x1b[" + color + "m" + text + "\x1b[0m"
}
