package sanitizer

// Sanitize filters raw source bytes down to the eight instruction
// characters, preserving their relative order. Everything else is a
// comment and is dropped.
func Sanitize(input []byte) []byte {
	cleaned := make([]byte, 0, len(input))

	for _, char := range input {
		if IsInstruction(char) {
			cleaned = append(cleaned, char)
		}
	}

	return cleaned
}

func IsInstruction(char byte) bool {
	switch char {
	case '>', '<', '+', '-', '.', ',', '[', ']':
		return true
	default:
		return false
	}
}
