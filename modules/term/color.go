package term

import "strconv"

type color struct {
	r, g, b uint8
	ansi    int
}

var (
	green  = color{r: 67, g: 233, b: 123, ansi: 32}
	yellow = color{r: 254, g: 225, b: 64, ansi: 33}
	blue   = color{r: 0, g: 201, b: 255, ansi: 34}
)

func (v Level) paint(c color, s string) string {
	switch v {
	case Level16M:
		return "\x1b[38;2;" + strconv.Itoa(int(c.r)) + ";" + strconv.Itoa(int(c.g)) + ";" + strconv.Itoa(int(c.b)) + "m" + s + "\x1b[0m"
	case Level256:
		return "\x1b[" + strconv.Itoa(c.ansi) + "m" + s + "\x1b[0m"
	}
	return s
}

// Green marks proxies.
func (v Level) Green(s string) string {
	return v.paint(green, s)
}

// Yellow marks direct connections and debug output.
func (v Level) Yellow(s string) string {
	return v.paint(yellow, s)
}

// Blue marks labels.
func (v Level) Blue(s string) string {
	return v.paint(blue, s)
}
