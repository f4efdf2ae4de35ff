package crom

import "strings"

// QueryError reports GraphQL-level errors returned by the Crom API. It is a
// terminal failure: no partial data is salvaged and no retry is attempted.
type QueryError struct {
	Errors []APIError
}

// Error joins all reported error messages with newlines. An empty error
// collection yields an empty message.
func (e *QueryError) Error() string {
	messages := make([]string, len(e.Errors))
	for i, apiErr := range e.Errors {
		messages[i] = apiErr.Message
	}
	return strings.Join(messages, "\n")
}
