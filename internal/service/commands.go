package service

// SendSMSCommand carries the caller's fields verbatim. Empty values are not
// rejected here; the provider decides what is acceptable.
type SendSMSCommand struct {
	To      string
	Message string
}
