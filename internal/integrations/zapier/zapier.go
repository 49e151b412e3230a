package zapier

//go:generate go run go.uber.org/mock/mockgen -source=./zapier.go -destination=./mocks/zapier_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"jaruri/config"
	"jaruri/infras/otel"
	"jaruri/shared/constant"

	"github.com/rs/zerolog/log"
)

const defaultTimeout = 10 * time.Second

// Client posts JSON payloads to Zapier catch hooks. Each hook URL maps to a Zap that
// fans the event out to spreadsheets and chat channels on the operations side.
type Client interface {
	Send(ctx context.Context, webhookURL string, payload any) error
}

type clientImpl struct {
	cfg        *config.Config
	httpClient *http.Client
	otel       otel.Otel
}

func New(cfg *config.Config, otel otel.Otel) Client {
	timeout := defaultTimeout
	if cfg.External.Zapier.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.External.Zapier.TimeoutSeconds) * time.Second
	}

	return &clientImpl{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		otel:       otel,
	}
}

func (c *clientImpl) Send(ctx context.Context, webhookURL string, payload any) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".zapier.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	if webhookURL == constant.Empty {
		log.Debug().Msg("zapier webhook not configured, skipping")

		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal zapier payload")

		return fmt.Errorf("failed to marshal zapier payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		log.Error().Err(err).Msg("failed to build zapier request")

		return fmt.Errorf("failed to build zapier request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("webhook", webhookURL).Msg("failed to call zapier webhook")

		return fmt.Errorf("failed to call zapier webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		log.Error().Int("status", resp.StatusCode).Str("webhook", webhookURL).Msg("zapier webhook rejected payload")

		return fmt.Errorf("zapier webhook returned status %d", resp.StatusCode)
	}

	log.Info().Str("webhook", webhookURL).Msg("zapier webhook delivered")

	return nil
}
