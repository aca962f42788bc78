package parser

import "fmt"

// Error reports why a single line of assembly could not be parsed: the
// mnemonic (if one was found) and a message.
type Error struct {
	Mnemonic string
	Message  string
}

func (e *Error) Error() string {
	if e.Mnemonic == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Mnemonic, e.Message)
}

func errf(mnemonic, format string, args ...interface{}) error {
	return &Error{Mnemonic: mnemonic, Message: fmt.Sprintf(format, args...)}
}
