package bf_io

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

type Streams struct {
	Out io.Writer
	Err io.Writer
	In  io.Reader
}

func (streams *Streams) Init(value Streams) *Streams {
	if value.Out == nil {
		streams.Out = os.Stdout
	} else {
		streams.Out = value.Out
	}
	if value.Err == nil {
		streams.Err = os.Stderr
	} else {
		streams.Err = value.Err
	}
	if value.In == nil {
		streams.In = os.Stdin
	} else {
		streams.In = value.In
	}

	return streams
}

// LineReader stages input one line at a time, the way the ','
// instruction consumes it: a line is read in full, then handed out byte
// by byte (its newline included) until exhausted.
type LineReader struct {
	reader      *bufio.Reader
	prompt      io.Writer
	interactive bool
	line        []byte
	pos         int
}

func NewLineReader(in io.Reader, prompt io.Writer, interactive bool) *LineReader {
	return &LineReader{
		reader:      bufio.NewReader(in),
		prompt:      prompt,
		interactive: interactive,
	}
}

// Next returns the next staged byte, blocking on one more line from the
// source when the staged one is exhausted. A false return means the
// source had nothing left; it is not sticky, a later call asks the
// source again.
func (reader *LineReader) Next() (byte, bool) {
	if reader.pos >= len(reader.line) {
		if !reader.refill() {
			return 0, false
		}
	}

	char := reader.line[reader.pos]
	reader.pos++

	return char, true
}

func (reader *LineReader) refill() bool {
	reader.line = nil
	reader.pos = 0

	if reader.interactive && reader.prompt != nil {
		fmt.Fprint(reader.prompt, "\nInput: ")
	}

	// a final unterminated line still counts, like fgets
	line, _ := reader.reader.ReadString('\n')
	if len(line) == 0 {
		return false
	}

	reader.line = []byte(line)
	return true
}

// IsInteractive reports whether the file is a terminal, the capability
// flag the runtime injects into the configuration.
func IsInteractive(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
