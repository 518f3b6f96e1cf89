package service

type SendSMSResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}
