package request

// ValidationError covers malformed or missing input, including bad time slots
// and illegal status transitions. Maps to 400 at the transport boundary.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// NotFoundError covers unknown providers, services and request ids. Maps to 404.
type NotFoundError struct {
	Message string
}

func (e NotFoundError) Error() string {
	return e.Message
}

// ForbiddenError covers ownership violations. Maps to 403.
type ForbiddenError struct {
	Message string
}

func (e ForbiddenError) Error() string {
	return e.Message
}
