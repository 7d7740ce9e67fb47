package model

type ChatRequest struct {
	Question       string  `json:"question"`
	ConversationID string  `json:"conversation_id,omitempty"`
	AlertContext   *string `json:"alert_context"`
	LogsContext    *string `json:"logs_context"`
}

type ChatResponse struct {
	Answer         string `json:"answer"`
	ConversationID string `json:"conversation_id,omitempty"`
}
