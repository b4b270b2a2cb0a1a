package services

// Kind classifies a failed envelope so the transport layer can pick a
// status code without parsing messages. It is not serialized; the wire
// envelope stays {success, message, data, errors}.
type Kind int

const (
	KindOK Kind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindAuth
	KindUnexpected
)

// Response is the uniform envelope returned by every service operation.
type Response[T any] struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    T        `json:"data"`
	Errors  []string `json:"errors"`
	Kind    Kind     `json:"-"`
}

// OK builds a successful envelope.
func OK[T any](data T, message string) Response[T] {
	return Response[T]{Success: true, Message: message, Data: data, Kind: KindOK}
}

// Fail builds a failed envelope of the given kind. Field-level messages are
// only attached for validation failures.
func Fail[T any](kind Kind, message string, errs ...string) Response[T] {
	return Response[T]{Success: false, Message: message, Errors: errs, Kind: kind}
}
