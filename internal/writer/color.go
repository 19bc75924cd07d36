// internal/writer/color.go
package writer

import (
	gkcolor "github.com/gookit/color"
)

func green(s string) string {
	return gkcolor.FgGreen.Sprint(s)
}

func yellow(s string) string {
	return gkcolor.FgYellow.Sprint(s)
}

func red(s string) string {
	return gkcolor.FgRed.Sprint(s)
}

func grey(s string) string {
	return gkcolor.RGB(138, 138, 138).Sprint(s)
}
