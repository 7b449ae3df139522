// Command uc compiles a gate list into a universal-circuit file pair.
//
// Usage:
//
//	uc <filename> [-version (0|2|4|-2)] [-valiant] [-random N]
//
// Exit code 0 on success, 1 on invalid argument or file-format rejection,
// in the same direct stderr-diagnostic-plus-exit-code style as
// uber-go/nilaway's cmd/nilaway/main.go.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/uc/gate"
	"github.com/katalvlaran/uc/pipeline"
	"github.com/katalvlaran/uc/ucemit"
)

func main() {
	flag.CommandLine.Init(os.Args[0], flag.ContinueOnError)
	version := flag.Int("version", 0, "split strategy: 0 hybrid, 2 two-way, 4 four-way, -2 four-way (splits as 4 does)")
	valiant := flag.Bool("valiant", false, "clear the Zhao option that -version -2 sets")
	random := flag.Int("random", 0, "generate a random N-node supergraph instead of reading a file")
	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		fail("cli", err)
	}
	switch *version {
	case 0, 2, 4, -2:
	default:
		fail("cli", fmt.Errorf("invalid -version %d", *version))
	}

	cfg := pipeline.NewConfig(
		pipeline.WithVersion(*version),
		pipeline.WithZhao(*version == -2 && !*valiant),
	)

	if *random > 0 {
		if err := runRandom(*random, cfg); err != nil {
			fail("random", err)
		}
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		fail("cli", fmt.Errorf("expected exactly one filename argument"))
	}

	if err := runFile(args[0], cfg); err != nil {
		fail("pipeline", err)
	}
}

func runFile(filename string, cfg pipeline.Config) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	list, err := gate.Parse(f)
	if err != nil {
		return err
	}

	result, err := pipeline.Run(list, cfg)
	if err != nil {
		return err
	}

	return writeArtifact(filename, result.Artifact)
}

func writeArtifact(filename string, art *ucemit.Artifact) error {
	circuit, err := os.Create(filename + ".circuit")
	if err != nil {
		return err
	}
	defer circuit.Close()
	if err := ucemit.WriteCircuit(circuit, art); err != nil {
		return err
	}

	programming, err := os.Create(filename + ".prog")
	if err != nil {
		return err
	}
	defer programming.Close()
	return ucemit.WriteProgramming(programming, art)
}

func fail(component string, err error) {
	fmt.Fprintf(os.Stderr, "uc: %s: %v\n", component, err)
	os.Exit(1)
}
