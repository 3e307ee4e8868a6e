package dto

// Envelope status values
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// APIResponse is the standard response envelope: {status, message?, data?}
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// NewSuccessResponse creates a success envelope
func NewSuccessResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	}
}

// NewErrorResponse creates an error envelope. Stack traces and internal
// details never appear here.
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		Status:  StatusError,
		Message: message,
	}
}

// PaginationInfo describes the position of a page within a listing
type PaginationInfo struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	PageSize    int   `json:"pageSize"`
	TotalItems  int64 `json:"totalItems"`
}

// PaginatedResponse represents a paginated list with metadata
type PaginatedResponse struct {
	Items      interface{}    `json:"items"`
	Pagination PaginationInfo `json:"pagination"`
}
