package dto

// ChatTurn is one prior message of the conversation. Role is "user" or "ai"
// as sent by the web client; "ai" maps to the assistant role upstream.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Message string     `json:"message"`
	History []ChatTurn `json:"history"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
	Cached bool   `json:"cached"`
	NoData bool   `json:"noData,omitempty"`
	QAID   string `json:"qaId,omitempty"`
}
