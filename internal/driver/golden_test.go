package driver

import (
	"bytes"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestFullPipelineGoldenOutputs snapshots the host-independent dump
// surface (tokens and tree) for a handful of representative programs, the way
// fixture_test.go snapshots whole-program interpreter output.
func TestFullPipelineGoldenOutputs(t *testing.T) {
	programs := map[string]string{
		"arithmetic": `
			func main() {
				var int x = 1 + 2 * 3;
				println(x);
			}
		`,
		"control_flow": `
			func classify(var int n) string {
				if (n < 0) {
					return "negative";
				} else {
					return "non-negative";
				}
			}
			func main() {
				println(classify(-1));
			}
		`,
		"globals_and_strings": `
			const string greeting = "hello";
			func main() {
				if (greeting == "hello") {
					println(greeting);
				}
			}
		`,
	}

	for name, src := range programs {
		src := src
		t.Run(name, func(t *testing.T) {
			path := writeSource(t, src)

			// IR output embeds the host's target triple, so it is not
			// snapshotted here; tokens and tree dumps are host-independent.
			var tokensOut, astOut, errOut bytes.Buffer
			Run(path, &tokensOut, &errOut, Options{TokensDump: true})
			Run(path, &astOut, &errOut, Options{ASTDump: true})

			snaps.MatchSnapshot(t, name+"_tokens", tokensOut.String())
			snaps.MatchSnapshot(t, name+"_ast", astOut.String())
		})
	}
}
