// Package cmd implements the stoc command-line surface: a single flat
// command taking an input path and an optional output path, plus the
// dump flags that short-circuit before code is produced.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stoclang/stoc/internal/driver"
)

var (
	// Version is set by build flags.
	Version = "0.1.0-dev"

	tokensDump bool
	astDump    bool
	emitLLVM   bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:     "stoc <input> [output]",
	Short:   "Stoc: an ahead-of-time compiler for a small statically-typed language",
	Version: Version,
	Args:    cobra.RangeArgs(1, 2),
	RunE:    runCompile,
}

func init() {
	rootCmd.Flags().BoolVar(&tokensDump, "tokens-dump", false, "print the token stream and exit")
	rootCmd.Flags().BoolVar(&astDump, "ast-dump", false, "print the parsed syntax tree and exit")
	rootCmd.Flags().BoolVar(&emitLLVM, "emit-llvm", false, "print the generated LLVM IR and exit")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the input and output paths to stderr before compiling")
}

func runCompile(cmd *cobra.Command, args []string) error {
	input := args[0]
	output := "a.out"
	if len(args) == 2 {
		output = args[1]
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "compiling %s -> %s\n", input, output)
	}

	opts := driver.Options{
		TokensDump: tokensDump,
		ASTDump:    astDump,
		EmitLLVM:   emitLLVM,
		Output:     output,
	}
	code := driver.Run(input, os.Stdout, os.Stderr, opts)
	if code != 0 {
		// The driver has already printed diagnostics; returning an error
		// here would only duplicate "Error: ..." noise on top of them.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		os.Exit(code)
	}
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
