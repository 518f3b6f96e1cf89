package v1

// SendSMSResponse is the body of every /send-sms reply. SID is set only on
// success and Error only on failure.
type SendSMSResponse struct {
	Success bool   `json:"success"`
	SID     string `json:"sid,omitempty"`
	Error   string `json:"error,omitempty"`
}
