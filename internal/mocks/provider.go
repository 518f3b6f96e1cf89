package mocks

import (
	"context"

	"github.com/Behyna/sms-relay/pkg/smsprovider"
	"github.com/stretchr/testify/mock"
)

type Provider struct {
	mock.Mock
}

func (p *Provider) Send(ctx context.Context, from string, to string, text string) (smsprovider.Response, error) {
	args := p.Called(ctx, from, to, text)
	return args.Get(0).(smsprovider.Response), args.Error(1)
}
