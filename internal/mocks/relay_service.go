package mocks

import (
	"context"

	"github.com/Behyna/sms-relay/internal/service"
	"github.com/stretchr/testify/mock"
)

type RelayService struct {
	mock.Mock
}

func (r *RelayService) SendSMS(ctx context.Context, cmd service.SendSMSCommand) (service.SendSMSResponse, error) {
	args := r.Called(ctx, cmd)
	return args.Get(0).(service.SendSMSResponse), args.Error(1)
}
