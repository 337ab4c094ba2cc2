package model

type NotesRequestBody struct {
	Notes []string `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
