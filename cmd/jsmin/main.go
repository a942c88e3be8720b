package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/minforge/jsmin/internal/logger"
	"github.com/minforge/jsmin/pkg/cli"
)

const jsminVersion = "0.1.0"

const helpText = `
Usage:
  jsmin [options] [input file]

Reads from stdin when no input file (or "-") is given and writes to stdout
unless --outfile is set.

Options:
  --outfile=...         Write the output to this file instead of stdout
  --max-line-length=... Wrap output lines longer than this where it's safe
                        (default 1000)
  --stack-limit=...     The maximum bracket nesting that is tracked
                        (default 1000)
  --sourcefile=...      Set the file name shown in error messages
  --color=...           Force use of color terminal escapes (true | false)
  --log-level=...       Disable logging (info | warning | error | silent,
                        default info)

Advanced options:
  --trace               Print every lexeme with its state transition
  --timing              Print how long each step took
  --cpuprofile=...      Write a CPU profile to this file
  --version             Print the current version and exit

Examples:
  # Minify a file into another file
  jsmin app.js --outfile=app.min.js

  # Provide input via stdin, get output via stdout
  jsmin < input.js > output.js
`

func main() {
	osArgs := os.Args[1:]
	cpuprofileFile := ""

	// Do an initial scan over the argument list
	argsEnd := 0
	for _, arg := range osArgs {
		switch {
		// Show help if a common help flag is provided
		case arg == "-h", arg == "-help", arg == "--help", arg == "/?":
			fmt.Fprintf(os.Stderr, "%s\n", helpText)
			os.Exit(0)

		// Special-case the version flag here
		case arg == "--version":
			fmt.Fprintf(os.Stderr, "%s\n", jsminVersion)
			os.Exit(0)

		case strings.HasPrefix(arg, "--cpuprofile="):
			cpuprofileFile = arg[len("--cpuprofile="):]

		default:
			// Strip any arguments that were handled above
			osArgs[argsEnd] = arg
			argsEnd++
		}
	}
	osArgs = osArgs[:argsEnd]

	// Print help text when there's nothing to read
	if len(osArgs) == 0 && logger.GetTerminalInfo(os.Stdin).IsTTY {
		fmt.Fprintf(os.Stderr, "%s\n", helpText)
		os.Exit(0)
	}

	// Capture the defer statements below so the profile is flushed first
	exitCode := 1
	func() {
		// To view a CPU profile, use "go tool pprof [file]"
		if cpuprofileFile != "" {
			f, err := os.Create(cpuprofileFile)
			if err != nil {
				logger.PrintErrorToStderr(osArgs, fmt.Sprintf(
					"Failed to create cpuprofile file: %s", err.Error()))
				return
			}
			defer f.Close()
			if err := pprof.StartCPUProfile(f); err != nil {
				logger.PrintErrorToStderr(osArgs, fmt.Sprintf(
					"Failed to start the CPU profiler: %s", err.Error()))
				return
			}
			defer pprof.StopCPUProfile()
		}

		exitCode = cli.Run(osArgs)
	}()

	os.Exit(exitCode)
}
