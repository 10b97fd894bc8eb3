package tl

import "github.com/ImSingee/go-ex/pp"

var gray = pp.GetColor(38, 5, 240)

type symbol struct {
	char  string
	color func(s string) string
}

var statusSymbols = map[taskStatus]symbol{
	taskStatusRunning: {">", func(s string) string { return pp.BlueString(s).GetForStdout() }},
	taskStatusSuccess: {"✓", func(s string) string { return pp.GreenString(s).GetForStdout() }},
	taskStatusFailed:  {"✗", func(s string) string { return pp.RedString(s).GetForStdout() }},
	taskStatusSkipped: {"-", func(s string) string { return pp.ColorString(gray, s).GetForStdout() }},
}

// statusIcon is the leading character of a task line, pending tasks get a hollow circle
func statusIcon(status taskStatus, colored bool) string {
	sym, ok := statusSymbols[status]
	if !ok {
		return "○"
	}
	if !colored {
		return sym.char
	}
	return sym.color(sym.char)
}

func skipSuffix(status taskStatus, reason string) string {
	if status != taskStatusSkipped {
		return ""
	}
	if reason == "" {
		return " (skipped)"
	}
	return " (skipped - " + reason + ")"
}
