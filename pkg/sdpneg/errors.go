package sdpneg

import "fmt"

// SDPErrorCode коды ошибок построения SDP из элементов переговоров.
type SDPErrorCode int

const (
	ErrorCodeInvalidConfig SDPErrorCode = iota + 2000
	ErrorCodeEmptyOffer
	ErrorCodeInvalidKind
	ErrorCodeSDPGeneration
)

// String возвращает строковое представление кода ошибки.
func (code SDPErrorCode) String() string {
	switch code {
	case ErrorCodeInvalidConfig:
		return "InvalidConfig"
	case ErrorCodeEmptyOffer:
		return "EmptyOffer"
	case ErrorCodeInvalidKind:
		return "InvalidKind"
	case ErrorCodeSDPGeneration:
		return "SDPGeneration"
	default:
		return fmt.Sprintf("Unknown(%d)", int(code))
	}
}

// SDPError ошибка построения SDP.
type SDPError struct {
	Code    SDPErrorCode
	Message string
	Wrapped error
}

// Error реализует интерфейс error.
func (e *SDPError) Error() string {
	return fmt.Sprintf("[sdp:%d] %s", e.Code, e.Message)
}

// Unwrap возвращает обернутую ошибку.
func (e *SDPError) Unwrap() error {
	return e.Wrapped
}

// Is сравнивает ошибки по коду.
func (e *SDPError) Is(target error) bool {
	if t, ok := target.(*SDPError); ok {
		return e.Code == t.Code
	}
	return false
}
