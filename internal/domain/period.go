package domain

import (
	"time"
)

type PeriodTag string

const (
	PeriodTagCurrent  PeriodTag = "current"
	PeriodTagPrevious PeriodTag = "previous"
)

// Period representa uma janela de datas de um relatório, inclusiva nas duas pontas
type Period struct {
	Tag   PeriodTag `json:"tag"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains verifica se a data está dentro do período (inclusivo em Start e End)
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// ReportingPeriods agrupa as janelas corrente e anterior de uma execução
type ReportingPeriods struct {
	Current  Period `json:"current"`
	Previous Period `json:"previous"`
	// Label é o rótulo humano do período corrente, ex: "March 2025"
	Label string `json:"label"`
}

// ResolvePeriods deriva as janelas de relatório a partir da maior data observada
// no dataset. O mês corrente é o mês que contém lastDate e o anterior é o mês
// imediatamente precedente, com rollover correto na virada de ano.
// As janelas são ancoradas nos dados, nunca no relógio de parede, então uma
// execução é reprodutível para um dataset fixo.
func ResolvePeriods(lastDate time.Time) ReportingPeriods {
	currentStart := time.Date(lastDate.Year(), lastDate.Month(), 1, 0, 0, 0, 0, lastDate.Location())
	prevEnd := currentStart.AddDate(0, 0, -1)
	prevStart := time.Date(prevEnd.Year(), prevEnd.Month(), 1, 0, 0, 0, 0, prevEnd.Location())

	return ReportingPeriods{
		Current: Period{
			Tag:   PeriodTagCurrent,
			Start: currentStart,
			End:   lastDate,
		},
		Previous: Period{
			Tag:   PeriodTagPrevious,
			Start: prevStart,
			End:   prevEnd,
		},
		Label: currentStart.Format("January 2006"),
	}
}
