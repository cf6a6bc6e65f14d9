package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/trendspotter/insight-engine/internal/domain"
)

// Colunas obrigatórias do dataset de atividade de marketing
const (
	ColumnDate            = "Date"
	ColumnCompany         = "Company"
	ColumnChannel         = "Channel_Used"
	ColumnAcquisitionCost = "Acquisition_Cost"
	ColumnROI             = "ROI"
	ColumnConversionRate  = "Conversion_Rate"
)

var requiredColumns = []string{
	ColumnDate,
	ColumnCompany,
	ColumnChannel,
	ColumnAcquisitionCost,
	ColumnROI,
	ColumnConversionRate,
}

// Formatos de data aceitos nas exportações de AdTech que já encontramos
var dateLayouts = []string{
	time.DateOnly,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"01/02/2006",
}

// currencyReplacer remove o símbolo de moeda e o separador de milhar de
// valores como "$1,200.00" antes da conversão numérica. Formatos com milhar
// em ponto não são suportados e descartam a linha como custo ilegível.
var currencyReplacer = strings.NewReplacer("$", "", ",", "", " ", "")

// DataError é fatal para a execução: o dataset não pode ser analisado
type DataError struct {
	Reason string
}

func (e *DataError) Error() string {
	return fmt.Sprintf("erro no dataset: %s", e.Reason)
}

// IsDataError verifica se o erro pertence à classe fatal de dados
func IsDataError(err error) bool {
	var dataErr *DataError
	return errors.As(err, &dataErr)
}

type CSVLoader struct{}

func NewLoader() *CSVLoader {
	return &CSVLoader{}
}

// Load lê e normaliza o dataset CSV. Cabeçalho obrigatório ausente é fatal
// (DataError); linhas individuais com data, custo ou conversão ilegíveis são
// descartadas com aviso; ROI não numérico vira indefinido em vez de erro.
func (l *CSVLoader) Load(path string) ([]domain.Record, error) {
	if path == "" {
		return nil, &DataError{Reason: "nenhum dataset selecionado"}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o dataset %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, &DataError{Reason: fmt.Sprintf("arquivo ilegível: %v", err)}
	}

	columns, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	records := make([]domain.Record, 0)
	line := 1
	skipped := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, &DataError{Reason: fmt.Sprintf("linha %d ilegível: %v", line, err)}
		}

		record, ok := parseRow(row, columns, line)
		if !ok {
			skipped++
			continue
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, &DataError{Reason: "dataset sem registros válidos"}
	}

	logrus.WithFields(logrus.Fields{
		"path":    path,
		"records": len(records),
		"skipped": skipped,
	}).Info("dataset: ingestão e limpeza concluídas")

	return records, nil
}

// mapColumns resolve o índice de cada coluna obrigatória a partir do cabeçalho
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, &DataError{Reason: fmt.Sprintf("o dataset precisa ter a coluna %q", required)}
		}
	}

	return columns, nil
}

func parseRow(row []string, columns map[string]int, line int) (domain.Record, bool) {
	date, err := parseDate(field(row, columns[ColumnDate]))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"line":  line,
			"value": field(row, columns[ColumnDate]),
		}).Warn("dataset: data ilegível, linha descartada")
		return domain.Record{}, false
	}

	cost, err := parseCurrency(field(row, columns[ColumnAcquisitionCost]))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"line":  line,
			"value": field(row, columns[ColumnAcquisitionCost]),
		}).Warn("dataset: custo de aquisição ilegível, linha descartada")
		return domain.Record{}, false
	}

	conversion, err := strconv.ParseFloat(strings.TrimSpace(field(row, columns[ColumnConversionRate])), 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"line":  line,
			"value": field(row, columns[ColumnConversionRate]),
		}).Warn("dataset: taxa de conversão ilegível, linha descartada")
		return domain.Record{}, false
	}

	record := domain.Record{
		Date:            date,
		Company:         strings.TrimSpace(field(row, columns[ColumnCompany])),
		Channel:         strings.TrimSpace(field(row, columns[ColumnChannel])),
		AcquisitionCost: cost,
		ConversionRate:  conversion,
	}

	// ROI é coagido para numérico; valores ilegíveis ficam indefinidos
	if roi, err := strconv.ParseFloat(strings.TrimSpace(field(row, columns[ColumnROI])), 64); err == nil {
		record.ROI = &roi
	}

	return record, true
}

func parseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, value); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("formato de data desconhecido: %q", value)
}

func parseCurrency(value string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(currencyReplacer.Replace(value)), 64)
}

func field(row []string, index int) string {
	if index < 0 || index >= len(row) {
		return ""
	}
	return row[index]
}
