package engine

import (
	"bfvm/bf_errors"
)

func (e *Engine) moveRight() error {
	if e.pointer == len(e.tape)-1 {
		if !e.config.WrapMemory {
			return bf_errors.OutOfBoundsError{PC: e.pc}
		}
		e.pointer = 0
		return nil
	}

	e.pointer++
	return nil
}

func (e *Engine) moveLeft() error {
	if e.pointer == 0 {
		if !e.config.WrapMemory {
			return bf_errors.OutOfBoundsError{PC: e.pc}
		}
		e.pointer = len(e.tape) - 1
		return nil
	}

	e.pointer--
	return nil
}

// emit writes one byte per '.' directly to the sink, so each output
// byte is visible before the next instruction runs.
func (e *Engine) emit() error {
	_, err := e.output.Write([]byte{e.tape[e.pointer]})
	return err
}

func (e *Engine) consume() {
	char, ok := e.input.Next()
	if !ok {
		// exhausted input: zero the cell or leave it alone
		if e.config.ZeroOnEOF {
			e.tape[e.pointer] = 0
		}
		return
	}

	e.tape[e.pointer] = char
}

func (e *Engine) loopOpen() error {
	if e.tape[e.pointer] == 0 {
		partner, ok := e.program.Match(e.pc)
		if !ok {
			return bf_errors.UnmatchedBracketError{PC: e.pc, Instruction: '['}
		}
		// lands just past the ']' once the pc advances
		e.pc = partner
		return nil
	}

	if len(e.loops) >= e.config.MaxNestedLoops {
		return bf_errors.TooManyNestedLoopsError{Max: e.config.MaxNestedLoops}
	}
	e.loops = append(e.loops, e.pc)
	return nil
}

func (e *Engine) loopClose() error {
	if len(e.loops) == 0 {
		return bf_errors.UnmatchedBracketError{PC: e.pc, Instruction: ']'}
	}

	if e.tape[e.pointer] != 0 {
		// resumes just past the '[' once the pc advances
		e.pc = e.loops[len(e.loops)-1]
		return nil
	}

	e.loops = e.loops[:len(e.loops)-1]
	return nil
}
