package ranking

import (
	"sort"

	"github.com/trendspotter/insight-engine/internal/domain"
)

// ChannelPerformance é o canal vencedor do período corrente de um cliente
type ChannelPerformance struct {
	Channel string  `json:"channel"`
	MeanROI float64 `json:"mean_roi"`
}

// UndefinedChannel é o canal reportado quando nenhum registro do período
// corrente tem ROI definido e o ranking não tem base de comparação
const UndefinedChannel = "N/A"

// BestChannel agrupa os registros por canal, calcula o ROI médio de cada grupo
// e seleciona o máximo. Empates são resolvidos pela ordem lexical do
// identificador do canal: uma regra explícita em vez da ordem incidental de
// iteração, para que execuções repetidas sobre a mesma entrada escolham sempre
// o mesmo canal. Só é invocado para clientes com registros no período corrente.
func BestChannel(records []domain.Record) ChannelPerformance {
	type channelAgg struct {
		sum   float64
		count int
	}

	byChannel := make(map[string]*channelAgg)
	for _, record := range records {
		if record.ROI == nil {
			continue
		}
		agg, ok := byChannel[record.Channel]
		if !ok {
			agg = &channelAgg{}
			byChannel[record.Channel] = agg
		}
		agg.sum += *record.ROI
		agg.count++
	}

	channels := make([]string, 0, len(byChannel))
	for channel := range byChannel {
		channels = append(channels, channel)
	}
	sort.Strings(channels)

	best := ChannelPerformance{Channel: UndefinedChannel}
	found := false
	for _, channel := range channels {
		agg := byChannel[channel]
		meanROI := agg.sum / float64(agg.count)
		// Estritamente maior: em empate, o canal lexicalmente menor já venceu
		if !found || meanROI > best.MeanROI {
			best = ChannelPerformance{Channel: channel, MeanROI: meanROI}
			found = true
		}
	}

	return best
}
