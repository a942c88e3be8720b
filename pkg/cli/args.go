package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minforge/jsmin/internal/exitcode"
	"github.com/minforge/jsmin/internal/helpers"
	"github.com/minforge/jsmin/pkg/api"
)

type options struct {
	minify    api.MinifyOptions
	inputPath string
	outfile   string
	trace     bool
	timing    bool
}

var validFlags = []string{
	"--color",
	"--log-level",
	"--max-line-length",
	"--outfile",
	"--sourcefile",
	"--stack-limit",
	"--timing",
	"--trace",
}

func parseOptions(osArgs []string) (options, error) {
	opts := options{}

	// Apply defaults appropriate for the CLI
	opts.minify.LogLevel = api.LogLevelInfo

	for _, arg := range osArgs {
		switch {
		case arg == "--trace":
			opts.trace = true

		case arg == "--timing":
			opts.timing = true

		case strings.HasPrefix(arg, "--outfile="):
			opts.outfile = arg[len("--outfile="):]

		case strings.HasPrefix(arg, "--sourcefile="):
			opts.minify.Sourcefile = arg[len("--sourcefile="):]

		case strings.HasPrefix(arg, "--max-line-length="):
			value, err := parseCount(arg, "--max-line-length=")
			if err != nil {
				return options{}, err
			}
			opts.minify.MaxLineLength = value

		case strings.HasPrefix(arg, "--stack-limit="):
			value, err := parseCount(arg, "--stack-limit=")
			if err != nil {
				return options{}, err
			}
			opts.minify.StackLimit = value

		case strings.HasPrefix(arg, "--color="):
			switch value := arg[len("--color="):]; value {
			case "true":
				opts.minify.Color = api.ColorAlways
			case "false":
				opts.minify.Color = api.ColorNever
			default:
				return options{}, exitcode.Usagef("Invalid color: %q (valid: true, false)", value)
			}

		case strings.HasPrefix(arg, "--log-level="):
			switch value := arg[len("--log-level="):]; value {
			case "info":
				opts.minify.LogLevel = api.LogLevelInfo
			case "warning":
				opts.minify.LogLevel = api.LogLevelWarning
			case "error":
				opts.minify.LogLevel = api.LogLevelError
			case "silent":
				opts.minify.LogLevel = api.LogLevelSilent
			default:
				return options{}, exitcode.Usagef("Invalid log level: %q (valid: info, warning, error, silent)", value)
			}

		case !strings.HasPrefix(arg, "-") || arg == "-":
			if opts.inputPath != "" {
				return options{}, exitcode.Usagef("Expected at most one input file but found %q and %q", opts.inputPath, arg)
			}
			opts.inputPath = arg

		default:
			return options{}, invalidFlag(arg)
		}
	}

	// Messages about the input file should name it
	if opts.minify.Sourcefile == "" && opts.inputPath != "" && opts.inputPath != "-" {
		opts.minify.Sourcefile = opts.inputPath
	}

	return opts, nil
}

func parseCount(arg string, prefix string) (int, error) {
	text := arg[len(prefix):]
	value, err := strconv.Atoi(text)
	if err != nil || value < 0 {
		return 0, exitcode.Usagef("Invalid value %q in %q (expected a non-negative integer)", text, arg)
	}
	return value, nil
}

func invalidFlag(arg string) error {
	name := arg
	if equals := strings.IndexByte(arg, '='); equals != -1 {
		name = arg[:equals]
	}

	text := fmt.Sprintf("Invalid flag: %q", arg)
	if corrected, ok := helpers.MakeTypoDetector(validFlags).MaybeCorrectTypo(name); ok {
		text += fmt.Sprintf(" (did you mean %q?)", corrected)
	}
	return exitcode.Usagef("%s", text)
}
