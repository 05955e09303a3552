// Package result holds the success/failure envelope returned by the service
// layer. Expected failures (missing rows, duplicates, storage errors) travel
// as values; they are never returned as Go errors.
package result

// Kind tags why a Result failed.
type Kind int

const (
	// None is the Kind of a successful Result.
	None Kind = iota
	// NotFound means the requested entity does not exist.
	NotFound
	// Duplicate means an entity with the same content already exists.
	Duplicate
	// Persistence means the storage layer failed.
	Persistence
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case NotFound:
		return "not_found"
	case Duplicate:
		return "duplicate"
	case Persistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Result wraps the outcome of a service call. Value is meaningful only when
// IsSuccess is true; Error and Kind only when it is false.
type Result[T any] struct {
	IsSuccess bool
	Value     T
	Error     string
	Kind      Kind
}

// Success wraps v in a successful Result.
func Success[T any](v T) Result[T] {
	return Result[T]{IsSuccess: true, Value: v}
}

// Failure returns a failed Result with a human-readable message.
func Failure[T any](kind Kind, msg string) Result[T] {
	return Result[T]{Kind: kind, Error: msg}
}

// NotFound reports whether r failed because the requested entity is absent.
func (r Result[T]) NotFound() bool {
	return !r.IsSuccess && r.Kind == NotFound
}
