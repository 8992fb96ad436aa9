package debugger

import (
	"encoding/json"
	"io"
)

// Client emits one JSON record per instruction, one per line, for
// tooling that consumes the trace instead of a human.
type Client struct {
	encoder *json.Encoder
}

func NewClient(w io.Writer) *Client {
	return &Client{encoder: json.NewEncoder(w)}
}

type record struct {
	PC          int    `json:"pc"`
	Instruction string `json:"instruction"`
	Pointer     int    `json:"pointer"`
	Window      int    `json:"window"`
	Cells       []int  `json:"cells"`
}

func (c *Client) Trace(state State) {
	start, end := state.window()

	cells := make([]int, 0, end-start+1)
	for i := start; i <= end; i++ {
		cells = append(cells, int(state.Tape[i]))
	}

	c.encoder.Encode(record{
		PC:          state.PC,
		Instruction: string(state.Instruction),
		Pointer:     state.Pointer,
		Window:      start,
		Cells:       cells,
	})
}
