package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trendspotter/insight-engine/internal/domain"
)

func roiPtr(v float64) *float64 {
	return &v
}

func record(channel string, roi *float64) domain.Record {
	return domain.Record{
		Date:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Company: "Acme Corp",
		Channel: channel,
		ROI:     roi,
	}
}

func TestBestChannel(t *testing.T) {
	tests := []struct {
		name    string
		records []domain.Record
		want    ChannelPerformance
	}{
		{
			name: "Canal com maior ROI médio vence",
			records: []domain.Record{
				record("Google Ads", roiPtr(2.0)),
				record("Google Ads", roiPtr(4.0)),
				record("Facebook", roiPtr(1.0)),
				record("Facebook", roiPtr(2.0)),
			},
			want: ChannelPerformance{Channel: "Google Ads", MeanROI: 3.0},
		},
		{
			name: "Empate resolvido pela ordem lexical do canal",
			records: []domain.Record{
				record("Social Media", roiPtr(2.5)),
				record("Email", roiPtr(2.5)),
				record("Referral", roiPtr(2.5)),
			},
			want: ChannelPerformance{Channel: "Email", MeanROI: 2.5},
		},
		{
			name: "Registros sem ROI não participam da média",
			records: []domain.Record{
				record("Google Ads", roiPtr(1.0)),
				record("Google Ads", nil),
				record("Facebook", roiPtr(0.5)),
			},
			want: ChannelPerformance{Channel: "Google Ads", MeanROI: 1.0},
		},
		{
			name: "Canal único",
			records: []domain.Record{
				record("Website", roiPtr(3.3)),
			},
			want: ChannelPerformance{Channel: "Website", MeanROI: 3.3},
		},
		{
			name:    "Sem registros com ROI definido o canal fica indefinido",
			records: []domain.Record{record("Website", nil)},
			want:    ChannelPerformance{Channel: UndefinedChannel},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BestChannel(tt.records)

			assert.Equal(t, tt.want.Channel, got.Channel)
			assert.InDelta(t, tt.want.MeanROI, got.MeanROI, 1e-9)
		})
	}
}

func TestBestChannelIsOrderIndependent(t *testing.T) {
	forward := []domain.Record{
		record("Social Media", roiPtr(2.5)),
		record("Email", roiPtr(2.5)),
		record("Google Ads", roiPtr(1.0)),
	}
	reversed := []domain.Record{forward[2], forward[1], forward[0]}

	assert.Equal(t, BestChannel(forward), BestChannel(reversed))
}
