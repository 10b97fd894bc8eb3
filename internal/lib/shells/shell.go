package shells

import (
	"strings"

	"github.com/alessio/shellescape"
	"github.com/google/shlex"
)

// Join renders args as a single shell-safe command line
func Join(cmdAndArgs []string) string {
	return shellescape.QuoteCommand(cmdAndArgs)
}

func Split(cmd string) ([]string, error) {
	return shlex.Split(cmd)
}

// Expand splits a command template and substitutes `{name}` placeholders
// inside every argument. Values are never re-split, so a value containing
// spaces stays a single argument.
func Expand(template string, vars map[string]string) ([]string, error) {
	args, err := Split(template)
	if err != nil {
		return nil, err
	}

	if len(vars) == 0 {
		return args, nil
	}

	pairs := make([]string, 0, len(vars)*2)
	for k, v := range vars {
		pairs = append(pairs, "{"+k+"}", v)
	}
	r := strings.NewReplacer(pairs...)

	for i, arg := range args {
		args[i] = r.Replace(arg)
	}

	return args, nil
}
