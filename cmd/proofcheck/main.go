// SPDX-License-Identifier: Apache-2.0
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"

	"proofcheck/internal/asm"
	"proofcheck/internal/errs"
	"proofcheck/internal/verifier"
)

func main() {
	verbose := false
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "-v" {
		verbose = true
		args = args[1:]
	}
	if verbose {
		commonlog.Configure(1, nil)
	}

	if len(args) != 3 {
		fmt.Println("Usage: proofcheck [-v] <gamma> <claims> <proof>")
		fmt.Println("Each input is a JSON int array (.json) or proof-machine assembly (.pma).")
		os.Exit(2)
	}

	gamma, err := loadStream(args[0])
	if err != nil {
		color.Red("failed to read gamma stream: %s", err)
		os.Exit(2)
	}
	claims, err := loadStream(args[1])
	if err != nil {
		color.Red("failed to read claim stream: %s", err)
		os.Exit(2)
	}
	proof, err := loadStream(args[2])
	if err != nil {
		color.Red("failed to read proof stream: %s", err)
		os.Exit(2)
	}

	reporter := errs.NewReporter(os.Stdout)

	status, remaining, err := verifier.VerifyDetailed(gamma, claims, proof)
	if err != nil {
		reporter.ReportFault(err)
		os.Exit(1)
	}

	if status == verifier.StatusUnproved {
		reporter.ReportResidualClaims(remaining)
		os.Exit(1)
	}

	reporter.ReportSuccess()
}

// loadStream reads one input file, dispatching on extension: ".pma" is
// parsed and compiled through internal/asm, anything else is read as a
// JSON array of ints.
func loadStream(path string) ([]int, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".pma") {
		prog, err := asm.ParseString(path, string(source))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		stream, err := asm.Compile(prog)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return stream, nil
	}

	var stream []int
	if err := json.Unmarshal(source, &stream); err != nil {
		return nil, fmt.Errorf("%s: not a JSON int array: %w", path, err)
	}
	return stream, nil
}
