package debugger

import (
	"fmt"
	"io"
)

// State is a live view of the engine at one instruction boundary.
// Observers must not retain or mutate Tape.
type State struct {
	PC          int
	Instruction byte
	Pointer     int
	Tape        []byte
}

// Tracer observes each instruction before it executes. The engine runs
// with a nil Tracer when tracing is off.
type Tracer interface {
	Trace(State)
}

// cells shown on each side of the data pointer, clipped to the tape
const context = 10

func (s State) window() (int, int) {
	start := s.Pointer - context
	if start < 0 {
		start = 0
	}
	end := s.Pointer + context
	if end > len(s.Tape)-1 {
		end = len(s.Tape) - 1
	}
	return start, end
}

// Console prints a human-readable dump per instruction, bracketing the
// current cell.
type Console struct {
	W io.Writer
}

func (c Console) Trace(state State) {
	start, end := state.window()

	fmt.Fprintf(c.W, "\n[DEBUG] PC: %d, Instruction: %c\n", state.PC, state.Instruction)
	fmt.Fprintf(c.W, "Memory[%d-%d]: ", start, end)
	for i := start; i <= end; i++ {
		if i == state.Pointer {
			fmt.Fprintf(c.W, "[%d] ", state.Tape[i])
		} else {
			fmt.Fprintf(c.W, "%d ", state.Tape[i])
		}
	}
	fmt.Fprintln(c.W)
}
