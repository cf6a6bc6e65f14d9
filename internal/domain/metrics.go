package domain

// MetricSet agrega um subconjunto de registros em métricas fixas do relatório.
// Um MetricSet nunca é construído para um subconjunto vazio: os agregadores
// retornam nil nesse caso e os chamadores decidem explicitamente o fallback.
type MetricSet struct {
	// Spend é a soma do custo de aquisição normalizado
	Spend float64 `json:"spend"`
	// ROI é a média aritmética dos valores de ROI definidos
	ROI float64 `json:"roi"`
	// Conversion é a média da taxa de conversão expressa em porcentagem
	Conversion float64 `json:"conversion"`
}

// DeltaSet representa a variação percentual entre dois MetricSets. Um
// componente anterior igual a zero deixa a variação indefinida: o valor fica
// 0 e o marcador *Defined correspondente fica falso, para o consumidor
// distinguir "estável" de "sem base de comparação".
type DeltaSet struct {
	SpendPct      float64 `json:"spend_pct"`
	ROIPct        float64 `json:"roi_pct"`
	ConversionPct float64 `json:"conversion_pct"`

	SpendPctDefined      bool `json:"spend_pct_defined"`
	ROIPctDefined        bool `json:"roi_pct_defined"`
	ConversionPctDefined bool `json:"conversion_pct_defined"`
}

// SentinelMetricSet é o fallback substituído quando não existem registros do
// período anterior. Produz uma variação finita porém sem significado de negócio,
// então todo relatório que o utiliza carrega PreviousFallback=true para o
// renderizador sinalizar "dados anteriores insuficientes".
func SentinelMetricSet() *MetricSet {
	return &MetricSet{Spend: 1, ROI: 1, Conversion: 1}
}

// ComputeDelta calcula a variação percentual de cada dimensão entre o período
// corrente e o anterior. Componente anterior igual a zero resulta em delta 0
// marcado como indefinido: a divisão por zero nunca acontece silenciosamente
// aqui e o consumidor sabe que não existe base de comparação.
func ComputeDelta(curr, prev *MetricSet) *DeltaSet {
	if curr == nil || prev == nil {
		return nil
	}

	delta := &DeltaSet{}
	delta.SpendPct, delta.SpendPctDefined = percentChange(curr.Spend, prev.Spend)
	delta.ROIPct, delta.ROIPctDefined = percentChange(curr.ROI, prev.ROI)
	delta.ConversionPct, delta.ConversionPctDefined = percentChange(curr.Conversion, prev.Conversion)
	return delta
}

func percentChange(curr, prev float64) (float64, bool) {
	if prev == 0 {
		return 0, false
	}
	return ((curr - prev) / prev) * 100, true
}
