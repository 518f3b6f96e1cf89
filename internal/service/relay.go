package service

import (
	"context"
	"time"

	"github.com/Behyna/sms-relay/internal/config"
	"github.com/Behyna/sms-relay/internal/constants"
	"github.com/Behyna/sms-relay/internal/metrics"
	"github.com/Behyna/sms-relay/pkg/smsprovider"
	"go.uber.org/zap"
)

type RelayService interface {
	SendSMS(ctx context.Context, cmd SendSMSCommand) (SendSMSResponse, error)
}

type relay struct {
	provider smsprovider.Provider
	from     string
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

func NewRelayService(provider smsprovider.Provider, cfg *config.Config, metrics *metrics.Metrics,
	logger *zap.Logger) RelayService {
	return &relay{provider: provider, from: cfg.Provider.From, metrics: metrics, logger: logger}
}

// SendSMS makes exactly one provider call. Acceptance by the provider counts as
// success; delivery is not tracked.
func (r *relay) SendSMS(ctx context.Context, cmd SendSMSCommand) (SendSMSResponse, error) {
	start := time.Now()

	res, err := r.provider.Send(ctx, r.from, cmd.To, cmd.Message)
	duration := time.Since(start)

	if err != nil {
		r.metrics.RecordProviderRequest(smsprovider.ProviderTwilio, metrics.OutcomeFailed, duration)
		r.logger.Debug("Provider rejected message",
			zap.Error(err),
			zap.String("to", cmd.To),
			zap.Duration("duration", duration))

		return SendSMSResponse{}, NewServiceError(constants.ErrCodeProviderFailure, err)
	}

	r.metrics.RecordProviderRequest(smsprovider.ProviderTwilio, metrics.OutcomeAccepted, duration)
	r.logger.Debug("Provider accepted message",
		zap.String("sid", res.MessageID),
		zap.String("status", res.Status),
		zap.String("to", cmd.To),
		zap.Duration("duration", duration))

	return SendSMSResponse{SID: res.MessageID, Status: res.Status}, nil
}
