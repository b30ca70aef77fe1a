package reporting

import (
	"fmt"

	"github.com/vfg2006/ipay-report-api/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	billion = 1_000_000_000
	million = 1_000_000
)

// printer agrupa milhares com vírgula, como no painel original
var printer = message.NewPrinter(language.English)

// FormatCurrency exibe valores em VND: "x.xx tỷ" a partir de um bilhão, senão "x.x tr"
func FormatCurrency(value float64) string {
	if value >= billion {
		return printer.Sprintf("%.2f tỷ", value/billion)
	}
	return printer.Sprintf("%.1f tr", value/million)
}

// FormatCount trunca para inteiro e agrupa milhares
func FormatCount(value float64) string {
	return printer.Sprintf("%d", int64(value))
}

func FormatPercent(value float64, decimals int) string {
	return fmt.Sprintf("%.*f%%", decimals, value*100)
}

func FormatSignedPercent(value float64, decimals int) string {
	return fmt.Sprintf("%+.*f%%", decimals, value*100)
}

// signed prefixa "+" em valores não negativos
func signed(value float64, format func(float64) string) string {
	if value >= 0 {
		return "+" + format(value)
	}
	return format(value)
}

func signTone(value float64) domain.Tone {
	if value >= 0 {
		return domain.TonePositive
	}
	return domain.ToneNegative
}
