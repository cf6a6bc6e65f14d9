package domain

import (
	"time"
)

// Record representa uma observação de atividade de marketing ingerida do dataset.
// Imutável após a ingestão.
type Record struct {
	Date            time.Time `json:"date"`
	Company         string    `json:"company"`
	Channel         string    `json:"channel"`
	AcquisitionCost float64   `json:"acquisition_cost"`
	// ROI é nil quando o valor de origem não é numérico (coerção falhou na ingestão)
	ROI            *float64 `json:"roi"`
	ConversionRate float64  `json:"conversion_rate"`
}
