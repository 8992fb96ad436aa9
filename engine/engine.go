package engine

import (
	"io"

	"bfvm/bf_errors"
	"bfvm/bf_io"
	"bfvm/config"
	"bfvm/debugger"
	"bfvm/program"
)

// maxMemorySize caps how large a tape a run may ask for. Requests past
// it fail with an AllocationError instead of exhausting the process.
const maxMemorySize = 1 << 30

type Options struct {
	Program program.Program
	Config  config.Config
	Input   *bf_io.LineReader
	Output  io.Writer
	Tracer  debugger.Tracer
}

// Engine executes one sanitized program against one tape. A run owns
// its tape, loop stack and input staging exclusively; nothing survives
// past Run returning.
type Engine struct {
	program program.Program
	config  config.Config
	input   *bf_io.LineReader
	output  io.Writer
	tracer  debugger.Tracer

	tape    []byte
	pointer int
	pc      int
	loops   []int
}

func New(options Options) (*Engine, error) {
	size := options.Config.MemorySize
	if size <= 0 || size > maxMemorySize {
		return nil, bf_errors.AllocationError{What: "tape", Size: size}
	}

	return &Engine{
		program: options.Program,
		config:  options.Config,
		input:   options.Input,
		output:  options.Output,
		tracer:  options.Tracer,
		tape:    make([]byte, size),
	}, nil
}

// Run drives the dispatch loop to completion or to the first fatal
// error. An UnclosedLoopError return means the program ran to its end
// with loops still open; every other non-nil return is fatal and halted
// execution at the reported position.
func (e *Engine) Run() error {
	for e.pc < e.program.Len() {
		instruction := e.program.At(e.pc)

		if e.tracer != nil {
			e.tracer.Trace(debugger.State{
				PC:          e.pc,
				Instruction: instruction,
				Pointer:     e.pointer,
				Tape:        e.tape,
			})
		}

		if err := e.step(instruction); err != nil {
			return err
		}

		e.pc++
	}

	if len(e.loops) != 0 {
		return bf_errors.UnclosedLoopError{Count: len(e.loops)}
	}

	return nil
}

func (e *Engine) step(instruction byte) error {
	switch instruction {
	case '>':
		return e.moveRight()
	case '<':
		return e.moveLeft()
	case '+':
		e.tape[e.pointer]++
	case '-':
		e.tape[e.pointer]--
	case '.':
		return e.emit()
	case ',':
		e.consume()
	case '[':
		return e.loopOpen()
	case ']':
		return e.loopClose()
	}

	return nil
}
