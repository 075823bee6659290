package driver

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.stoc")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTokensDumpShortCircuitsBeforeParsing(t *testing.T) {
	path := writeSource(t, `var int x = 1;`)
	var out, errOut bytes.Buffer
	code := Run(path, &out, &errOut, Options{TokensDump: true})
	if code != 0 {
		t.Fatalf("got exit %d, want 0: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "VAR") {
		t.Errorf("tokens dump = %q, want it to contain VAR", out.String())
	}
}

func TestASTDumpShortCircuitsBeforeSemanticAnalysis(t *testing.T) {
	path := writeSource(t, `func main() { }`)
	var out, errOut bytes.Buffer
	code := Run(path, &out, &errOut, Options{ASTDump: true})
	if code != 0 {
		t.Fatalf("got exit %d, want 0: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "FuncDecl") {
		t.Errorf("ast dump = %q, want it to contain FuncDecl", out.String())
	}
}

func TestScanErrorStopsBeforeParsing(t *testing.T) {
	path := writeSource(t, `var int x = "unterminated;`)
	var out, errOut bytes.Buffer
	code := Run(path, &out, &errOut, Options{ASTDump: true})
	if code != 1 {
		t.Fatalf("got exit %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "Scanning error") {
		t.Errorf("errOut = %q, want a Scanning error", errOut.String())
	}
}

func TestParseErrorStopsBeforeSemanticAnalysis(t *testing.T) {
	path := writeSource(t, `func main( { }`)
	var out, errOut bytes.Buffer
	code := Run(path, &out, &errOut, Options{})
	if code != 1 {
		t.Fatalf("got exit %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "Parsing error") {
		t.Errorf("errOut = %q, want a Parsing error", errOut.String())
	}
}

func TestMissingMainIsASemanticError(t *testing.T) {
	path := writeSource(t, `func helper() { }`)
	var out, errOut bytes.Buffer
	code := Run(path, &out, &errOut, Options{})
	if code != 1 {
		t.Fatalf("got exit %d, want 1", code)
	}
	if !strings.Contains(errOut.String(), "Semantic analysis error") {
		t.Errorf("errOut = %q, want a Semantic analysis error", errOut.String())
	}
}

func TestEmitLLVMShortCircuitsBeforeLinking(t *testing.T) {
	path := writeSource(t, `func main() { println(1); }`)
	var out, errOut bytes.Buffer
	code := Run(path, &out, &errOut, Options{EmitLLVM: true})
	if code != 0 {
		t.Fatalf("got exit %d, want 0: %s", code, errOut.String())
	}
	if !strings.Contains(out.String(), "define") {
		t.Errorf("IR output = %q, want it to contain a function definition", out.String())
	}
	if !strings.Contains(out.String(), "@main") {
		t.Errorf("IR output = %q, want the unmangled @main entry point", out.String())
	}
}

func TestMissingFileIsReportedWithoutPanicking(t *testing.T) {
	var out, errOut bytes.Buffer
	code := Run(filepath.Join(t.TempDir(), "nope.stoc"), &out, &errOut, Options{})
	if code != 1 {
		t.Fatalf("got exit %d, want 1", code)
	}
	if errOut.Len() == 0 {
		t.Error("expected an error message for a missing file")
	}
}
