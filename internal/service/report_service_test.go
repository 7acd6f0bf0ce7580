package service

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"datavision/internal/cache"
	"datavision/internal/recope"
)

func newReportServiceWithUpstream(t *testing.T, handler http.HandlerFunc) ReportService {
	t.Helper()
	upstream := httptest.NewServer(handler)
	t.Cleanup(upstream.Close)
	client := recope.New(upstream.URL, &cache.Client{}, slog.New(slog.DiscardHandler))
	return NewReportService(client)
}

func unavailableUpstream(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusServiceUnavailable)
}

func TestFuelPricesHistoryDataset(t *testing.T) {
	svc := newReportServiceWithUpstream(t, unavailableUpstream)

	report := svc.FuelPricesHistory(context.Background())
	assert.Equal(t, "line", report.ChartType)
	assert.NotEmpty(t, report.Title)
	assert.Len(t, report.Data, 8)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestCurrentFuelPricesFallsBack(t *testing.T) {
	svc := newReportServiceWithUpstream(t, unavailableUpstream)

	report := svc.CurrentFuelPrices(context.Background())
	assert.Equal(t, "bar", report.ChartType)
	// Upstream is down but the dataset is still well formed.
	require.NotEmpty(t, report.Data)
	assert.Equal(t, "Gasolina Súper", report.Data[0].Label)
}

func TestCurrentFuelPricesPrefersLiveData(t *testing.T) {
	svc := newReportServiceWithUpstream(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[
			{"id": "1", "preciototal": "800.5", "nomprod": "Gasolina Súper"},
			{"id": "2", "preciototal": "not-a-number", "nomprod": "Broken Row"},
			{"id": "3", "preciototal": "650", "nomprod": "Diésel"}
		]`))
	})

	report := svc.CurrentFuelPrices(context.Background())
	require.Len(t, report.Data, 2)
	assert.Equal(t, "Gasolina Súper", report.Data[0].Label)
	assert.Equal(t, 800.5, report.Data[0].Value)
	assert.Equal(t, "Diésel", report.Data[1].Label)
}

func TestAllReports(t *testing.T) {
	svc := newReportServiceWithUpstream(t, unavailableUpstream)

	reports := svc.AllReports(context.Background())
	require.Len(t, reports, 3)
	for _, key := range []string{"fuelPricesHistory", "currentFuelPrices", "fuelSales"} {
		require.Contains(t, reports, key)
		assert.NotEmpty(t, reports[key].Data)
	}
}

func TestSummary(t *testing.T) {
	svc := newReportServiceWithUpstream(t, unavailableUpstream)

	summary := svc.Summary(context.Background())
	assert.Equal(t, 5, summary.TotalFuelTypes)
	// Average of the curated snapshot: (761+739+634+576+428)/5.
	assert.InDelta(t, 627.6, summary.AveragePrice, 0.01)
	assert.Equal(t, "Gasolina Súper", summary.TopFuelByVolume)
	assert.NotEmpty(t, summary.DataSource)
	assert.False(t, summary.LastUpdated.IsZero())
}
