package fmt

import (
	sysfmt "fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

var (
	Green      = color.New(color.FgGreen, color.Bold).SprintFunc()
	Cyan       = color.New(color.FgCyan, color.Bold).SprintFunc()
	Magenta    = color.New(color.FgMagenta, color.Bold).SprintFunc()
	Yellow     = color.New(color.FgYellow, color.Bold).SprintFunc()
	Red        = color.New(color.FgRed, color.Bold).SprintFunc()
	Blue       = color.New(color.FgBlue, color.Bold).SprintFunc()
	colorFuncs = []func(a ...interface{}) string{
		Green,
		Cyan,
		Magenta,
		Yellow,
		Red,
		Blue,
	}
)

var output io.Writer = color.Output

// SetOutput redirect every printer, nil restores the terminal
func SetOutput(w io.Writer) {
	if w == nil {
		w = color.Output
	}
	output = w
}

type Printer func(format string, args ...interface{})

func (p Printer) PrependTime() Printer {
	return func(format string, args ...interface{}) {
		p(timeStr(time.Now())+" "+format, args...)
	}
}

// PrependTag prefix each line with [tag]
func (p Printer) PrependTag(tag string) Printer {
	return func(format string, args ...interface{}) {
		p("["+tag+"] "+format, args...)
	}
}

var (
	// Print with color
	Print = Printer(rawPrint)
	// PrintWithTime print with time
	PrintWithTime = Printer(rawPrint).PrependTime()
)

// Tracer returns the debug printer of a package
func Tracer(tag string) Printer {
	return PrintWithTime.PrependTag(tag)
}

// Chain colors every part and joins them with arrows
func Chain(parts ...string) string {
	colored := make([]string, len(parts))
	for i, part := range parts {
		colored[i] = colorFuncs[i%len(colorFuncs)](part)
	}
	return strings.Join(colored, "->")
}

func rawPrint(format string, args ...interface{}) {
	if len(args) == 0 {
		sysfmt.Fprintln(output, format)
		return
	}
	sysfmt.Fprint(output, render(format, args))
}

// render formats each verb separately so every argument gets its own color
func render(format string, args []interface{}) string {
	var sb strings.Builder
	var idx int
	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' {
			sb.WriteRune(runes[i])
			continue
		}
		if i+1 < len(runes) && runes[i+1] == '%' {
			sb.WriteRune('%')
			i++
			continue
		}
		j := i + 1
		for ; j < len(runes); j++ {
			if (runes[j] >= 'A' && runes[j] <= 'Z') || (runes[j] >= 'a' && runes[j] <= 'z') {
				break
			}
		}
		if j == len(runes) {
			j--
		}
		verb := string(runes[i : j+1])
		i = j
		if idx >= len(args) {
			sb.WriteString(verb)
			continue
		}
		sb.WriteString(colorFuncs[idx%len(colorFuncs)](sysfmt.Sprintf(verb, args[idx])))
		idx++
	}
	if !strings.HasSuffix(sb.String(), "\n") {
		sb.WriteByte('\n')
	}
	return sb.String()
}

func timeStr(tm time.Time) string {
	return tm.Format("15:04:05")
}
