package response

var (
	ErrInvalidRequestFormat = ErrorResponse{
		Status:  "error",
		Error:   "invalid_request",
		Details: "Invalid request format",
	}

	// Login failures are reported identically whether the username is
	// unknown or the password is wrong.
	ErrAuthenticationFailed = ErrorResponse{
		Status:  "error",
		Error:   "authentication_failed",
		Details: "Invalid credentials",
	}

	ErrAuthorizationFailed = ErrorResponse{
		Status:  "error",
		Error:   "authorization_failed",
		Details: "Missing or invalid token",
	}

	ErrNoImages = ErrorResponse{
		Status:  "error",
		Error:   "validation_failed",
		Details: "At least one image is required",
	}

	ErrEventNotFound = ErrorResponse{
		Status:  "error",
		Error:   "not_found",
		Details: "Event not found",
	}

	ErrInternal = ErrorResponse{
		Status:  "error",
		Error:   "internal_error",
		Details: "Internal server error",
	}
)
