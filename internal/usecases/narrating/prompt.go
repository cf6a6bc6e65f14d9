package narrating

import (
	"fmt"
	"math"
	"strings"

	"github.com/trendspotter/insight-engine/internal/domain"
	"github.com/trendspotter/insight-engine/pkg/utils"
)

// promptTemplate é o prompt estruturado de "verdade estrita": apenas números
// pré-computados entram aqui e o modelo é instruído a descrevê-los, nunca a
// recalculá-los ou inferir tendências por conta própria
const promptTemplate = `ACT AS: A Senior Account Manager at a premium Ad Agency.
CLIENT: "%s"
PERIOD: %s

### PERFORMANCE DATA (STRICT TRUTH):
- Spend: $%s (%s %.1f%%).
- ROI: %.2fx (Trending %s %.1f%%).
- Top Channel: %s (%.2fx ROI).

### YOUR TASK:
Write a short, professional Executive Recap (1 paragraph).
1. HIGHLIGHT: The ROI trend.
2. EXPLAIN: Connect the result to the Spend or Channel performance.
3. OPTIMIZE: Suggest doubling down on the Top Channel.`

// BuildPrompt monta o prompt de um cliente com exatamente três fatos numéricos:
// investimento, ROI (ambos com direção e magnitude) e melhor canal com seu ROI
func BuildPrompt(report *domain.ClientReport, periodLabel string) string {
	roiArrow := "DOWN"
	if report.Delta.ROIPct > 0 {
		roiArrow = "UP"
	}

	spendArrow := "DECREASED"
	if report.Delta.SpendPct > 0 {
		spendArrow = "INCREASED"
	}

	return fmt.Sprintf(promptTemplate,
		report.Company,
		periodLabel,
		utils.FormatThousands(report.Current.Spend),
		spendArrow,
		math.Abs(report.Delta.SpendPct),
		report.Current.ROI,
		roiArrow,
		math.Abs(report.Delta.ROIPct),
		report.BestChannel,
		report.BestChannelROI,
	)
}

// sanitizeNarrative remove marcadores de ênfase e de cabeçalho de markdown,
// já que o renderizador de documentos não interpreta markdown
func sanitizeNarrative(text string) string {
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "##", "")
	return strings.TrimSpace(text)
}
