package llvmgen

import (
	"fmt"
	"os"
	"os/exec"

	"tinygo.org/x/go-llvm"
)

// Compile writes the module to a temporary bitcode file, invokes llc to
// produce an object file, then invokes the system C compiler to link it
// into outputPath, removing both temporaries on completion or failure.
// Callers must call Verify first.
func Compile(mod llvm.Module, outputPath string) error {
	bcFile, err := os.CreateTemp("", "stoc-*.bc")
	if err != nil {
		return fmt.Errorf("creating temporary bitcode file: %w", err)
	}
	bcPath := bcFile.Name()
	bcFile.Close()
	defer os.Remove(bcPath)

	if ok := llvm.WriteBitcodeToFile(mod, bcPath); ok != nil {
		return fmt.Errorf("writing bitcode: %w", ok)
	}

	objFile, err := os.CreateTemp("", "stoc-*.o")
	if err != nil {
		return fmt.Errorf("creating temporary object file: %w", err)
	}
	objPath := objFile.Name()
	objFile.Close()
	defer os.Remove(objPath)

	llc := exec.Command("llc", "-filetype=obj", "-o", objPath, bcPath)
	llc.Stderr = os.Stderr
	if err := llc.Run(); err != nil {
		return fmt.Errorf("running llc: %w", err)
	}

	cc := exec.Command("cc", "-o", outputPath, objPath)
	cc.Stderr = os.Stderr
	if err := cc.Run(); err != nil {
		return fmt.Errorf("linking with cc: %w", err)
	}

	return nil
}
