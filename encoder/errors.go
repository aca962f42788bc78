package encoder

import "fmt"

// EncodingError reports why an instruction.Instruction could not be
// packed into a bit pattern: a message, the mnemonic it was encoding,
// and (if the failure came from a lower-level helper, e.g. a range
// check) the wrapped cause.
type EncodingError struct {
	Mnemonic string
	Message  string
	Cause    error
}

func (e *EncodingError) Error() string {
	if e.Mnemonic == "" {
		return e.Message
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Mnemonic, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Mnemonic, e.Message)
}

func (e *EncodingError) Unwrap() error { return e.Cause }

func encErr(mnemonic, message string) error {
	return &EncodingError{Mnemonic: mnemonic, Message: message}
}

func encErrWrap(mnemonic, message string, cause error) error {
	return &EncodingError{Mnemonic: mnemonic, Message: message, Cause: cause}
}
