package smsprovider

import (
	"context"
	"net/http"
	"time"

	"github.com/twilio/twilio-go"
	"github.com/twilio/twilio-go/client"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

type Provider interface {
	Send(ctx context.Context, from string, to string, text string) (res Response, err error)
}

type Config struct {
	AccountSID string        `mapstructure:"account_sid"`
	AuthToken  string        `mapstructure:"auth_token"`
	From       string        `mapstructure:"from"`
	Timeout    time.Duration `mapstructure:"timeout"`
	BaseURL    string        `mapstructure:"base_url"`
}

type SMSProvider struct {
	api *twilioApi.ApiService
}

// NewSMSProvider builds a Twilio backed provider. httpClient carries transport
// settings such as the timeout; nil falls back to the SDK default client.
func NewSMSProvider(cfg Config, httpClient *http.Client) Provider {
	c := &client.Client{
		Credentials: client.NewCredentials(cfg.AccountSID, cfg.AuthToken),
		HTTPClient:  httpClient,
	}
	c.SetAccountSid(cfg.AccountSID)

	rest := twilio.NewRestClientWithParams(twilio.ClientParams{Client: c})

	return &SMSProvider{api: rest.Api}
}

// Send issues one create-message call. The SDK call is not context aware, so ctx
// is only checked before the request goes out.
func (s *SMSProvider) Send(ctx context.Context, from string, to string, text string) (Response, error) {
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(from)
	params.SetTo(to)
	params.SetBody(text)

	msg, err := s.api.CreateMessage(params)
	if err != nil {
		return Response{}, fromTwilioError(err)
	}

	return Response{
		MessageID: deref(msg.Sid),
		Provider:  ProviderTwilio,
		Status:    deref(msg.Status),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
