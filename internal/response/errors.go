package response

// ErrCode identifies an API error.
type ErrCode string

const (
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrNotEnoughSeats ErrCode = "NOT_ENOUGH_SEATS"
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrInternal       ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check the query parameters."
	case ErrNotEnoughSeats:
		return "The room does not have enough available seats for every student."
	case ErrNotFound:
		return "Resource not found."
	case ErrInternal:
		return "Internal server error."
	default:
		return "Unexpected error."
	}
}
