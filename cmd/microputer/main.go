// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/tebeka/atexit"

	"github.com/ezrec/microputer/emulator"
	"github.com/ezrec/microputer/io"
	"github.com/ezrec/microputer/translate"
)

var f = translate.From

// defaultRuns are processed, in order, when no image and listing are given.
var defaultRuns = [](struct {
	input  string
	output string
}){
	{"project1_reference_files/inp1.dat", "disassembled_output1.asm"},
	{"project1_reference_files/inp2.dat", "disassembled_output2.asm"},
	{"project1_reference_files/inp3.dat", "disassembled_output3.asm"},
}

// start loads, disassembles, and then executes a single image.
func start(emu *emulator.Emulator, input string, output string, execute bool) (err error) {
	translate.Fprintf(os.Stdout, "\nInput File (machine code): \t'%v'\n", input)
	translate.Fprintf(os.Stdout, "Output File   (.asm file): \t'%v'\n\n", output)

	emu.Reset()

	err = emu.Load(io.DirFS(filepath.Dir(input)), filepath.Base(input))
	if err != nil {
		return
	}

	err = emu.Disassemble(io.DirFS(filepath.Dir(output)), filepath.Base(output))
	if err != nil {
		return
	}

	if !execute {
		return
	}

	return emu.Run()
}

func main() {
	var input string
	var output string
	var verbose bool
	var listOnly bool

	flag.StringVar(&input, "i", "", "Binary image (machine code) to load")
	flag.StringVar(&output, "o", "", "Listing (.asm) file to write")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&listOnly, "n", false, "Disassemble only, do not execute")

	flag.Parse()

	switch {
	case flag.NArg() == 2 && len(input) == 0 && len(output) == 0:
		input = flag.Arg(0)
		output = flag.Arg(1)
	case flag.NArg() != 0:
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.Terminal.Input = os.Stdin
	emu.Terminal.Output = os.Stdout

	atexit.Register(func() {
		emu.Close()
	})

	if len(input) != 0 && len(output) != 0 {
		err := start(emu, input, output, !listOnly)
		if err != nil {
			atexit.Fatalf("%v: %v", os.Args[0], err)
		}
		atexit.Exit(0)
	}

	log.Print(f("%v: files were not specified, running the default files", os.Args[0]))

	for _, run := range defaultRuns {
		err := start(emu, run.input, run.output, !listOnly)
		if err != nil {
			atexit.Fatalf("%v: %v", os.Args[0], err)
		}
	}

	atexit.Exit(0)
}
