package export

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/vfg2006/ipay-report-api/internal/domain"
	"github.com/vfg2006/ipay-report-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX é o tipo de conteúdo das planilhas exportadas
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	totalLabel    = "Tổng"
	headerColor   = "1B6B3A"
	integerFormat = "#,##0"
	percentFormat = "0.0%"
)

// FileName devolve o nome do arquivo da tabela diária, ex. TAPCARE_2025-03.xlsx
func FileName(report *domain.DailyDetailReport) string {
	return fmt.Sprintf("%s_%d-%02d.xlsx", report.ProductCode, report.Year, report.Month)
}

func sheetName(report *domain.DailyDetailReport) string {
	return fmt.Sprintf("%02d-%d", report.Month, report.Year)
}

// DailyDetailWorkbook monta a planilha da tabela diária com a linha de totais no fim
func DailyDetailWorkbook(report *domain.DailyDetailReport) (_ *excelize.File, err error) {
	f := excelize.NewFile()
	defer func() {
		if err != nil {
			f.Close()
		}
	}()

	sheet := sheetName(report)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, errors.Wrap(err, "erro ao nomear a planilha")
	}

	styles, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeHeader(f, sheet, report.Headers, styles.header); err != nil {
		return nil, err
	}

	for i, row := range report.Rows {
		values := []any{
			row.Day,
			utils.RoundWithTwoDecimalPlace(row.Policies),
			utils.RoundWithTwoDecimalPlace(row.Policies30),
			utils.RoundWithTwoDecimalPlace(row.Cash),
			utils.RoundWithTwoDecimalPlace(row.Cash30),
			utils.RoundWithTwoDecimalPlace(row.ExpectedCash),
			row.NewPolicies,
			row.NewPolicies30,
			row.Cancellations,
			row.RenewalRate,
			row.Growth,
		}
		if err := writeRow(f, sheet, i+2, values, styles.integer, styles.percent); err != nil {
			return nil, err
		}
	}

	totals := report.Totals
	totalRow := len(report.Rows) + 2
	values := []any{
		totalLabel,
		utils.RoundWithTwoDecimalPlace(totals.Policies),
		utils.RoundWithTwoDecimalPlace(totals.Policies30),
		utils.RoundWithTwoDecimalPlace(totals.Cash),
		utils.RoundWithTwoDecimalPlace(totals.Cash30),
		utils.RoundWithTwoDecimalPlace(totals.ExpectedCash),
		totals.NewPolicies,
		totals.NewPolicies30,
		totals.Cancellations,
		totals.RenewalRate,
		totals.Growth,
	}
	if err := writeRow(f, sheet, totalRow, values, styles.totalInteger, styles.totalPercent); err != nil {
		return nil, err
	}

	err = f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao congelar o cabeçalho")
	}

	return f, nil
}

// WriteDailyDetail grava a planilha da tabela diária no writer
func WriteDailyDetail(w io.Writer, report *domain.DailyDetailReport) error {
	f, err := DailyDetailWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "erro ao gravar a planilha")
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	if len(headers) == 0 {
		return errors.New("planilha sem cabeçalho")
	}

	for i, header := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return errors.Wrap(err, "erro ao calcular a célula do cabeçalho")
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return errors.Wrapf(err, "erro ao escrever o cabeçalho %s", cell)
		}
	}

	lastColumn, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		return errors.Wrap(err, "erro ao calcular a última coluna")
	}
	if err := f.SetCellStyle(sheet, "A1", lastColumn+"1", style); err != nil {
		return errors.Wrap(err, "erro ao formatar o cabeçalho")
	}
	if err := f.SetColWidth(sheet, "A", "A", 8); err != nil {
		return errors.Wrap(err, "erro ao ajustar a largura da coluna")
	}
	if len(headers) > 1 {
		if err := f.SetColWidth(sheet, "B", lastColumn, 18); err != nil {
			return errors.Wrap(err, "erro ao ajustar a largura das colunas")
		}
	}
	return nil
}

// A coluna da taxa de renovação é a única em percentual
const renewalRateColumn = 10

func writeRow(f *excelize.File, sheet string, rowNumber int, values []any, integerStyle, percentStyle int) error {
	for i, value := range values {
		column := i + 1
		cell, err := excelize.CoordinatesToCellName(column, rowNumber)
		if err != nil {
			return errors.Wrap(err, "erro ao calcular a célula")
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return errors.Wrapf(err, "erro ao escrever a célula %s", cell)
		}

		style := integerStyle
		if column == renewalRateColumn {
			style = percentStyle
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return errors.Wrapf(err, "erro ao formatar a célula %s", cell)
		}
	}
	return nil
}

type workbookStyles struct {
	header       int
	integer      int
	percent      int
	totalInteger int
	totalPercent int
}

func newStyles(f *excelize.File) (workbookStyles, error) {
	var (
		styles workbookStyles
		err    error
	)

	integer := integerFormat
	percent := percentFormat
	totalFill := excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}}
	totalFont := &excelize.Font{Bold: true, Color: "FFFFFF"}

	definitions := []struct {
		target *int
		style  *excelize.Style
	}{
		{&styles.header, &excelize.Style{Font: totalFont, Fill: totalFill, Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true}}},
		{&styles.integer, &excelize.Style{CustomNumFmt: &integer}},
		{&styles.percent, &excelize.Style{CustomNumFmt: &percent}},
		{&styles.totalInteger, &excelize.Style{Font: totalFont, Fill: totalFill, CustomNumFmt: &integer}},
		{&styles.totalPercent, &excelize.Style{Font: totalFont, Fill: totalFill, CustomNumFmt: &percent}},
	}

	for _, definition := range definitions {
		*definition.target, err = f.NewStyle(definition.style)
		if err != nil {
			return styles, errors.Wrap(err, "erro ao criar estilo da planilha")
		}
	}
	return styles, nil
}
