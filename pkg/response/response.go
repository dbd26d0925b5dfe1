package response

// ErrorBody is the standard error envelope: a message, optionally with the
// underlying detail attached.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// WriteResult is the standard success envelope for write operations: the
// refreshed collection for the entity that was written.
type WriteResult struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// Err wraps a message in the error envelope.
func Err(msg string) ErrorBody {
	return ErrorBody{Error: msg}
}

// ErrDetails wraps a message plus the underlying detail.
func ErrDetails(msg, details string) ErrorBody {
	return ErrorBody{Error: msg, Details: details}
}

// Write wraps a refreshed collection in the success envelope.
func Write(data any) WriteResult {
	return WriteResult{Success: true, Data: data}
}
