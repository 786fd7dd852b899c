package message

const (
	InvalidInput       = "Invalid input."
	UnknownField       = "Unknown field in payload."
	PayloadTooLarge    = "Payload too large."
	UnsupportedMedia   = "Content-Type must be application/json."
	NoteNotFound       = "Note not found."
	NoteDeleted        = "Note deleted successfully."
	InternalError      = "An internal error occurred."
	ServiceDescription = "Notes API"
)
