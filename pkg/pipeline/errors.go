package pipeline

import "errors"

// Error kinds are distinguished by behavior: what the worker does with
// the file afterwards depends on which of these the failure wraps.
var (
	// ErrConfiguration aborts at startup.
	ErrConfiguration = errors.New("configuration error")

	// ErrDependency means a backend was unreachable; the file stays in
	// incoming/ and is retried on a later pass.
	ErrDependency = errors.New("dependency unavailable")

	// ErrModelUnavailable means the requested model is not installed on
	// the LLM backend; the file moves to errors/.
	ErrModelUnavailable = errors.New("model unavailable")

	// ErrExtraction means the PDF could not be opened or read; the file
	// moves to errors/.
	ErrExtraction = errors.New("extraction failed")

	// ErrPersistence means the submission root row could not be created;
	// the file stays in incoming/ so no partial state is left behind.
	ErrPersistence = errors.New("persistence failed")
)

func IsRetryable(err error) bool {
	return errors.Is(err, ErrDependency) || errors.Is(err, ErrPersistence)
}
