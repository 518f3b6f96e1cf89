package smsprovider

type Response struct {
	MessageID string `json:"message_id"`
	Provider  string `json:"provider"`
	Status    string `json:"status"`
}
