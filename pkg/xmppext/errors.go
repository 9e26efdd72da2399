package xmppext

import "fmt"

// ExtErrorCode типизированные коды ошибок модели расширений.
// Коды разбора (stream fault, unexpected EOF) поглощаются на границе
// провайдера; коды сборки (build incomplete) возвращаются вызывающему.
type ExtErrorCode int

const (
	// Ошибки разбора
	ErrorCodeStreamFault ExtErrorCode = iota + 1000
	ErrorCodeUnexpectedEOF
	ErrorCodeMissingField
	ErrorCodeInvalidValue

	// Ошибки сборки
	ErrorCodeBuildIncomplete
)

// String возвращает строковое представление кода ошибки.
func (code ExtErrorCode) String() string {
	switch code {
	case ErrorCodeStreamFault:
		return "StreamFault"
	case ErrorCodeUnexpectedEOF:
		return "UnexpectedEOF"
	case ErrorCodeMissingField:
		return "MissingField"
	case ErrorCodeInvalidValue:
		return "InvalidValue"
	case ErrorCodeBuildIncomplete:
		return "BuildIncomplete"
	default:
		return fmt.Sprintf("Unknown(%d)", int(code))
	}
}

// ExtError ошибка модели расширений с типизированным кодом,
// именем элемента и опционально обернутой ошибкой.
type ExtError struct {
	Code    ExtErrorCode
	Element string
	Message string
	Wrapped error
}

// Error реализует интерфейс error.
func (e *ExtError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("[расширение:%d] элемент %s: %s", e.Code, e.Element, e.Message)
	}
	return fmt.Sprintf("[расширение:%d] %s", e.Code, e.Message)
}

// Unwrap возвращает обернутую ошибку, поддерживая errors.Unwrap.
func (e *ExtError) Unwrap() error {
	return e.Wrapped
}

// Is поддерживает errors.Is, сравнивая ошибки по коду.
func (e *ExtError) Is(target error) bool {
	if t, ok := target.(*ExtError); ok {
		return e.Code == t.Code
	}
	return false
}

// NewExtError создает ошибку с заданным кодом.
func NewExtError(code ExtErrorCode, element, message string) *ExtError {
	return &ExtError{Code: code, Element: element, Message: message}
}

// WrapExtError создает ошибку, оборачивая исходную.
func WrapExtError(code ExtErrorCode, element, message string, err error) *ExtError {
	return &ExtError{Code: code, Element: element, Message: message, Wrapped: err}
}
