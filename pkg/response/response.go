package response

// Message is the standard success body: {"message": "..."}
type Message struct {
	Message string `json:"message"`
}

// Error is the standard failure body: {"error": "..."}
type Error struct {
	Error string `json:"error"`
}

// Msg wraps a confirmation string in the standard success shape
func Msg(message string) Message {
	return Message{Message: message}
}

// Err wraps an error message in the standard failure shape
func Err(message string) Error {
	return Error{Error: message}
}
