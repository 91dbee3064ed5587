package response

const (
	// MessageSuccess is the message body of a successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal error details from API clients.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the envelope error code for unexpected failures.
	InternalServerErrorCode = 500

	// DateTimeFormat is the wire format for timestamps.
	DateTimeFormat = "2006-01-02 15:04:05"
)
