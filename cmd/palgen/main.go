package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"palgen/internal/palette"
	"palgen/internal/version"
)

// malformedMessage is printed to stdout when the input does not split into triplets.
const malformedMessage = "meh..."

// exitError carries a process exit status for failures that were already reported.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "palgen file.pal",
		Short:         "Print an RGB palette dump as C array initializers",
		Long:          "palgen reads a binary file of RGB triplets and prints each one as {0xRR, 0xGG, 0xBB }, breaking the line after every fourth entry.\nA file named \"version\" or starting with \"-\" must be passed as ./version or after --.",
		Args:          cobra.ExactArgs(1),
		RunE:          runPalette,
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       version.Version,
	}
	rootCmd.PersistentPreRunE = checkColorFlag
	rootCmd.PersistentFlags().String("color", "auto", "colorize stderr diagnostics and version output (auto|on|off); palette output is never colored")
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func checkColorFlag(cmd *cobra.Command, args []string) error {
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	_, err = readColorMode(colorFlag)
	return err
}

func runPalette(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	err := palette.FormatFile(out, args[0])
	if errors.Is(err, palette.ErrMalformed) {
		fmt.Fprintln(out, malformedMessage)
		return &exitError{code: 1}
	}
	return err
}

// run executes the CLI and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}

	colorFlag, _ := rootCmd.PersistentFlags().GetString("color")
	mode, modeErr := readColorMode(colorFlag)
	if modeErr != nil {
		mode = colorModeAuto
	}
	printError(stderr, err, shouldColor(mode, stderr))
	return 1
}

// main runs the CLI; any failure exits with status 1.
func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func printError(w io.Writer, err error, colored bool) {
	prefix := color.New(color.FgRed, color.Bold)
	if colored {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	fmt.Fprintf(w, "%s %v\n", prefix.Sprint("error:"), err)
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
