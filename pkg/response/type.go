package response

// Status messages returned by mutating item endpoints.
const (
	StatusAdded   = "added"
	StatusUpdated = "updated"
	StatusDeleted = "deleted"
)

// DefaultErrorMessage is returned for any fault that has no HTTP mapping.
const DefaultErrorMessage = "internal server error"

// StatusResp is the acknowledgement body of a successful mutation.
type StatusResp struct {
	Status string `json:"status"`
}

// ErrorResp is the body of every failed request.
type ErrorResp struct {
	Error string `json:"error"`
}
