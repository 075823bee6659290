// Command stoc compiles a single Stoc source file to a native executable.
package main

import (
	"os"

	"github.com/stoclang/stoc/cmd/stoc/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
