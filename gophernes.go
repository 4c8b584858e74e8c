// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/jetsetilly/gophernes/ansi"
	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/disassembly"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cpu"
	"github.com/jetsetilly/gophernes/hardware/cpu/execution"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/prefs"
	"github.com/jetsetilly/gophernes/rewind"
	"github.com/jetsetilly/gophernes/statsview"
	"github.com/jetsetilly/gophernes/version"
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the exit
// status of the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "PERFORMANCE", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "PERFORMANCE":
		err = perform(md, output)

	case "DISASM":
		err = disasm(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return 20
	}

	return 0
}

// isTerminal returns true if the writer is connected to a terminal.
func isTerminal(output io.Writer) bool {
	f, ok := output.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	echo := md.AddBool("log", false, "echo debugging log to stdout")
	illegal := md.AddString("illegal", "", "illegal opcode policy: EMULATE, NOP, ABORT")
	model := md.AddString("model", "", "cpu model: 2A03, 6502")
	steps := md.AddUint64("steps", 1000, "number of instructions to execute (0 for no limit)")
	frames := md.AddInt("frames", 0, "number of frames to execute (overrides -steps)")
	snapshot := md.AddInt("snapshot", 0, "take a snapshot every N instructions")
	maxSnapshots := md.AddInt("max", 0, "maximum number of snapshots to keep")
	trace := md.AddBool("trace", false, "print every instruction")
	memvizFile := md.AddString("memviz", "", "write graphviz representation of the final state to file")
	stats := md.AddBool("statsview", false, "run stats server")
	sessionPrefs := md.AddString("prefs", "", "preferences for this session (key::value; key::value)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := md.ExpectArgs(1); err != nil {
		return err
	}

	if *sessionPrefs != "" {
		prefs.PushCommandLineStack(*sessionPrefs)
		defer prefs.PopCommandLineStack()
	}

	if *echo {
		var w io.Writer = output
		if isTerminal(output) {
			w = logger.NewColorizer(output)
		}
		logger.SetEcho(w, false)
		defer logger.SetEcho(nil, false)
	}

	if *stats {
		if !statsview.Available() {
			return curated.Errorf("stats server not available in this build")
		}
		statsview.Launch(output)
	}

	nes, err := hardware.NewNES(nil)
	if err != nil {
		return err
	}

	if *illegal != "" {
		if err := nes.Instance.Prefs.IllegalOpcodes.Set(*illegal); err != nil {
			return err
		}
	}
	if *model != "" {
		if err := nes.Instance.Prefs.CPUModel.Set(*model); err != nil {
			return err
		}
	}

	if err := nes.Attach(cartridgeloader.NewLoader(md.GetArg(0))); err != nil {
		return err
	}

	rwd, err := rewind.NewRewind(nes)
	if err != nil {
		return err
	}
	if *snapshot > 0 {
		if err := rwd.Prefs.Freq.Set(*snapshot); err != nil {
			return err
		}
	}
	if *maxSnapshots > 0 {
		if err := rwd.Prefs.MaxEntries.Set(*maxSnapshots); err != nil {
			return err
		}
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	performanceBrake := 0

	continueCheck := func() (bool, error) {
		if *trace {
			fmt.Fprintln(output, annotate(nes.CPU.LastResult))
		}

		rwd.Check()

		performanceBrake++
		if performanceBrake >= hardware.PerformanceBrake {
			performanceBrake = 0
			select {
			case <-intChan:
				return false, nil
			default:
			}
		}

		return true, nil
	}

	startTime := time.Now()

	switch {
	case *frames > 0:
		err = nes.RunForFrameCount(*frames, continueCheck)
	case *steps > 0:
		err = nes.RunForInstructionCount(*steps, continueCheck)
	default:
		err = nes.Run(continueCheck)
	}

	if err != nil {
		if !curated.Is(err, cpu.Halted) && !curated.Is(err, cpu.UnimplementedInstruction) {
			return err
		}
		fmt.Fprintf(output, "* %v\n", err)
	}

	summary(output, nes, rwd, time.Since(startTime))

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		rwd.TakeSnapshot().Visualise(f)
	}

	return nil
}

// summary prints the state of the machine at the end of a run.
func summary(output io.Writer, nes *hardware.NES, rwd *rewind.Rewind, elapsed time.Duration) {
	pen := ""
	normal := ""
	if isTerminal(output) {
		pen = ansi.Pens["cyan"]
		normal = ansi.NormalPen
	}

	fmt.Fprintf(output, "%s%s%s\n", pen, nes.CPU, normal)
	fmt.Fprintf(output, "%d instructions, %d cycles, %d frames in %s\n",
		nes.Instructions, nes.CPU.Cycles, nes.PPU.Frame, elapsed.Round(time.Millisecond))

	if rwd.Len() > 0 {
		tl := rwd.GetTimeline()
		fmt.Fprintf(output, "%d snapshots (cycles %d to %d)\n", rwd.Len(), tl.AvailableStart, tl.AvailableEnd)
	}
}

// annotate the result of an instruction with the symbol for any address in
// the operand.
func annotate(r execution.Result) string {
	if sym := disassembly.Annotate(r); sym != "" {
		return fmt.Sprintf("%s  ; %s", r, sym)
	}
	return r.String()
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	all := md.AddBool("all", false, "include entries not reachable from the interrupt vectors")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := md.ExpectArgs(1); err != nil {
		return err
	}

	dsm, err := disassembly.FromCartridge(cartridgeloader.NewLoader(md.GetArg(0)))
	if err != nil {
		return err
	}

	level := disassembly.EntryLevelBlessed
	if *all {
		level = disassembly.EntryLevelDecoded
	}
	dsm.Write(output, level)

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := md.ExpectArgs(1); err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	return performance.Check(output, prf, cartridgeloader.NewLoader(md.GetArg(0)), *duration)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if err := md.ExpectArgs(0); err != nil {
		return err
	}

	v, r, _ := version.Version()
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s %s", version.ApplicationName, v))
	if *revision {
		s.WriteString(fmt.Sprintf(" (%s)", r))
	}
	fmt.Fprintln(output, s.String())

	return nil
}
