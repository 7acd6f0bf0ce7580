package recope

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datavision/internal/cache"
)

func newTestClient(upstream *httptest.Server) *Client {
	return New(upstream.URL, &cache.Client{}, slog.New(slog.DiscardHandler))
}

func TestInternationalPrices(t *testing.T) {
	var gotQuery string
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/precio-internacional", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"periodos": [{"desde": "2024-01-01", "hasta": "2024-01-31"}],
			"materiales": [{"id": "1", "nomprod": "Gasolina Súper", "precios": [742.5, 738.0]}]
		}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	prices := client.InternationalPrices(context.Background(), "2024-01-01", "2024-01-31")

	require.NotNil(t, prices)
	require.Len(t, prices.Periods, 1)
	assert.Equal(t, "2024-01-01", prices.Periods[0].From)
	require.Len(t, prices.Materials, 1)
	assert.Equal(t, "Gasolina Súper", prices.Materials[0].Product)
	assert.Equal(t, []float64{742.5, 738.0}, prices.Materials[0].Prices)
	assert.Contains(t, gotQuery, "inicio=2024-01-01")
	assert.Contains(t, gotQuery, "fin=2024-01-31")
}

func TestInternationalPricesOmitsPartialRange(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A range with only one bound is dropped entirely.
		assert.Empty(t, r.URL.RawQuery)
		_, _ = w.Write([]byte(`{"periodos": [], "materiales": []}`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	prices := client.InternationalPrices(context.Background(), "2024-01-01", "")
	require.NotNil(t, prices)
}

func TestConsumerPrices(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ventas/precio/consumidor", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"fecha": "2024-08-01", "tipo": "consumidor", "id": "1", "preciototal": "761", "nomprod": "Gasolina Súper"},
			{"fecha": "2024-08-01", "tipo": "consumidor", "id": "2", "preciototal": "739", "nomprod": "Gasolina Regular"}
		]`))
	}))
	defer upstream.Close()

	client := newTestClient(upstream)
	prices := client.ConsumerPrices(context.Background())

	require.Len(t, prices, 2)
	assert.Equal(t, "Gasolina Súper", prices[0].Product)
	assert.Equal(t, "761", prices[0].TotalPrice)
}

func TestUpstreamFailuresMeanNoData(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "non-2xx",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"periodos": [`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			upstream := httptest.NewServer(tt.handler)
			defer upstream.Close()

			client := newTestClient(upstream)
			assert.Nil(t, client.InternationalPrices(context.Background(), "", ""))
			assert.Nil(t, client.ConsumerPrices(context.Background()))
			assert.Nil(t, client.PlantPrices(context.Background()))
		})
	}
}

func TestUnreachableUpstreamMeansNoData(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close() // connection refused from here on

	client := newTestClient(upstream)
	assert.Nil(t, client.PlantPrices(context.Background()))
}
