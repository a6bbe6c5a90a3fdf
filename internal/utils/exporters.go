package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
)

// DataInput abstrai a fonte de dados de uma exportação: uma planilha com
// cabeçalho e linhas já convertidas para string.
type DataInput interface {
	Headers() []string
	Rows() [][]string
	SheetName() string
}

// SliceDataInput implementa DataInput para um [][]string cuja primeira linha
// é o cabeçalho.
type SliceDataInput struct {
	data      [][]string
	sheetName string
}

// NewSliceDataInput cria um DataInput a partir de linhas prontas.
func NewSliceDataInput(data [][]string, sheetName string) (*SliceDataInput, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: nenhum dado fornecido para exportação", core.ErrInvalidInput)
	}
	if sheetName == "" {
		sheetName = "Dados"
	}
	return &SliceDataInput{data: data, sheetName: sheetName}, nil
}

func (s *SliceDataInput) Headers() []string {
	return s.data[0]
}

func (s *SliceDataInput) Rows() [][]string {
	if len(s.data) <= 1 {
		return nil
	}
	return s.data[1:]
}

func (s *SliceDataInput) SheetName() string { return s.sheetName }

// --- Construtores de planilha por entidade ---

// InventarioDataInput monta a planilha de itens de inventário.
func InventarioDataInput(items []models.InventarioItem, sheetName string) (*SliceDataInput, error) {
	rows := [][]string{{"Obra", "Nome", "Tipo", "Quantidade", "Custo Unitário", "Status", "Descrição"}}
	for _, it := range items {
		rows = append(rows, []string{
			it.ObraNome,
			it.Nome,
			it.Tipo,
			strconv.Itoa(it.Quantidade),
			FormatCurrency(it.CustoUnitario),
			it.StatusMovimentacao,
			it.Descricao,
		})
	}
	return NewSliceDataInput(rows, sheetName)
}

// TransacoesDataInput monta a planilha do extrato financeiro de uma obra.
// Transações canceladas aparecem com o motivo, nunca são omitidas.
func TransacoesDataInput(transacoes []models.Transacao, sheetName string) (*SliceDataInput, error) {
	rows := [][]string{{"Data", "Tipo", "Descrição", "Valor", "Status", "Motivo Cancelamento"}}
	for _, t := range transacoes {
		rows = append(rows, []string{
			FormatDateTime(t.CreatedAt),
			t.Tipo,
			t.Descricao,
			FormatCurrency(t.Valor),
			t.Status,
			t.MotivoCancelamento,
		})
	}
	return NewSliceDataInput(rows, sheetName)
}

// KPIDataInput monta a planilha de indicadores do relatório geral.
// saldoTotal é derivado no cliente (receitas - custos).
func KPIDataInput(kpis models.KPIReport, saldoTotal float64) (*SliceDataInput, error) {
	rows := [][]string{
		{"Indicador", "Valor"},
		{"Orçamento Atual Total", FormatCurrency(kpis.TotalOrcamentoAtual)},
		{"Total de Custos", FormatCurrency(kpis.TotalCustos)},
		{"Total de Receitas", FormatCurrency(kpis.TotalReceitas)},
		{"Saldo Total", FormatCurrency(saldoTotal)},
		{"Obras Ativas", strconv.Itoa(kpis.ObrasAtivas)},
		{"Obras Concluídas", strconv.Itoa(kpis.ObrasConcluidas)},
		{"Total de Obras", strconv.Itoa(kpis.TotalObras)},
	}
	return NewSliceDataInput(rows, "Indicadores")
}

// ExportToCSV exporta um DataInput para CSV (delimitador ';').
func ExportToCSV(input DataInput, outputPath string, cfg *core.Config) (string, error) {
	finalPath := resolveOutputPath(outputPath, cfg.ExportDir, ".csv")

	file, err := os.Create(finalPath)
	if err != nil {
		return "", fmt.Errorf("%w: falha ao criar arquivo CSV '%s': %w", core.ErrExport, finalPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = ';'

	if err := writer.Write(input.Headers()); err != nil {
		return "", core.WrapErrorf(err, "falha ao escrever cabeçalhos CSV")
	}
	for _, row := range input.Rows() {
		if err := writer.Write(row); err != nil {
			return "", core.WrapErrorf(err, "falha ao escrever linha CSV")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", core.WrapErrorf(err, "falha ao dar flush no writer CSV")
	}
	appLogger.Infof("Dados exportados para CSV: %s", finalPath)
	return finalPath, nil
}

// ExportToXLSX exporta um ou mais DataInputs para um arquivo Excel, uma
// planilha por input, com cabeçalho estilizado.
func ExportToXLSX(inputs []DataInput, outputPath string, cfg *core.Config) (string, error) {
	if len(inputs) == 0 {
		return "", fmt.Errorf("%w: nada para exportar", core.ErrInvalidInput)
	}
	finalPath := resolveOutputPath(outputPath, cfg.ExportDir, ".xlsx")

	xlsx := excelize.NewFile()
	defer func() {
		if err := xlsx.Close(); err != nil {
			appLogger.Errorf("Erro ao fechar arquivo XLSX: %v", err)
		}
	}()

	headerStyle, _ := xlsx.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1A659E"}, Pattern: 1},
		Font:      &excelize.Font{Color: "FFFFFF", Bold: true, Size: 11, Family: "Segoe UI"},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})

	for i, input := range inputs {
		sheetName := input.SheetName()
		if sheetName == "" {
			sheetName = fmt.Sprintf("Planilha%d", i+1)
		}
		if i == 0 {
			xlsx.SetSheetName("Sheet1", sheetName)
		} else {
			if _, err := xlsx.NewSheet(sheetName); err != nil {
				return "", core.WrapErrorf(err, "falha ao criar planilha '%s'", sheetName)
			}
		}

		for colIdx, headerVal := range input.Headers() {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
			xlsx.SetCellValue(sheetName, cell, headerVal)
			xlsx.SetCellStyle(sheetName, cell, cell, headerStyle)
		}

		for rowIdx, rowData := range input.Rows() {
			for colIdx, cellData := range rowData {
				cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
				xlsx.SetCellValue(sheetName, cell, cellData)
			}
		}
	}

	if err := xlsx.SaveAs(finalPath); err != nil {
		return "", fmt.Errorf("%w: falha ao salvar arquivo XLSX '%s': %w", core.ErrExport, finalPath, err)
	}
	appLogger.Infof("Dados exportados para XLSX: %s", finalPath)
	return finalPath, nil
}

// resolveOutputPath resolve o caminho final do arquivo exportado, garantindo
// diretório e extensão. Nome relativo cai no diretório de exportação da config.
func resolveOutputPath(path string, defaultDir string, defaultExt string) string {
	p := filepath.Clean(path)
	if !filepath.IsAbs(p) {
		absDefaultDir, _ := filepath.Abs(defaultDir)
		p = filepath.Join(absDefaultDir, p)
	}

	dir := filepath.Dir(p)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		appLogger.Warnf("Não foi possível criar diretório de exportação '%s': %v. Usando diretório atual.", dir, err)
		p = filepath.Base(p)
	}

	if ext := filepath.Ext(p); !strings.EqualFold(ext, defaultExt) {
		p = strings.TrimSuffix(p, ext) + defaultExt
	}
	return p
}

// TimestampedFilename gera um nome de arquivo com carimbo de data/hora,
// ex: "inventario_20240131_154500".
func TimestampedFilename(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, time.Now().Format("20060102_150405"))
}
