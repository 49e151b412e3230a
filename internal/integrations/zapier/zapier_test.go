package zapier_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"jaruri/config"
	"jaruri/infras/otel/mocks"
	"jaruri/internal/integrations/zapier"
)

func TestClient_Send(t *testing.T) {
	client := zapier.New(&config.Config{}, mocks.NewOtel())

	t.Run("delivers JSON payload", func(t *testing.T) {
		var received map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &received))

			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		err := client.Send(context.Background(), server.URL, map[string]string{
			"event":      "booking.created",
			"booking_id": "booking-1",
		})

		assert.NoError(t, err)
		assert.Equal(t, "booking.created", received["event"])
	})

	t.Run("rejected payload is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		err := client.Send(context.Background(), server.URL, map[string]string{"event": "test"})

		assert.Error(t, err)
	})

	t.Run("missing webhook is a no-op", func(t *testing.T) {
		err := client.Send(context.Background(), "", map[string]string{"event": "test"})

		assert.NoError(t, err)
	})
}
