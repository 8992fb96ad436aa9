package program

// Program is an immutable, sanitized instruction sequence together with
// a table mapping each matched bracket to its partner.
type Program struct {
	code  []byte
	pairs map[int]int
}

// New resolves bracket pairs in a single stack-based pass. Unmatched
// brackets simply get no table entry; they are reported at run time, at
// the position where execution actually depends on them.
func New(code []byte) Program {
	pairs := map[int]int{}
	open := []int{}

	for pc, char := range code {
		switch char {
		case '[':
			open = append(open, pc)
		case ']':
			if len(open) == 0 {
				continue
			}
			partner := open[len(open)-1]
			open = open[:len(open)-1]
			pairs[partner] = pc
			pairs[pc] = partner
		}
	}

	return Program{code: code, pairs: pairs}
}

func (p Program) Len() int {
	return len(p.code)
}

func (p Program) At(pc int) byte {
	return p.code[pc]
}

// Match returns the position of the bracket matching the one at pc.
func (p Program) Match(pc int) (int, bool) {
	partner, ok := p.pairs[pc]
	return partner, ok
}
