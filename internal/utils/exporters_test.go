package utils

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/models"
)

func exportConfig(t *testing.T) *core.Config {
	t.Helper()
	return &core.Config{ExportDir: t.TempDir()}
}

func TestExportToXLSXMultiplasPlanilhas(t *testing.T) {
	cfg := exportConfig(t)

	estoque, err := InventarioDataInput([]models.InventarioItem{
		{ObraNome: "Estoque Central", Nome: "Betoneira", Tipo: "ferramenta", Quantidade: 2, CustoUnitario: 1500, StatusMovimentacao: "Em Estoque"},
	}, "Estoque Central")
	if err != nil {
		t.Fatal(err)
	}
	obras, err := InventarioDataInput(nil, "Em Obras")
	if err != nil {
		t.Fatal(err)
	}

	path, err := ExportToXLSX([]DataInput{estoque, obras}, "inventario_teste", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, ".xlsx") {
		t.Errorf("extensão ausente: %s", path)
	}
	if filepath.Dir(path) != cfg.ExportDir {
		t.Errorf("arquivo fora do diretório de exportação: %s", path)
	}

	xlsx, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("arquivo gerado não abre: %v", err)
	}
	defer xlsx.Close()

	sheets := xlsx.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Estoque Central" || sheets[1] != "Em Obras" {
		t.Errorf("planilhas = %v", sheets)
	}
	nome, _ := xlsx.GetCellValue("Estoque Central", "B2")
	if nome != "Betoneira" {
		t.Errorf("B2 = %q, quer Betoneira", nome)
	}
}

func TestExportToXLSXSemInputs(t *testing.T) {
	if _, err := ExportToXLSX(nil, "vazio", exportConfig(t)); err == nil {
		t.Fatal("exportação sem inputs deve falhar")
	}
}

func TestExportToCSV(t *testing.T) {
	cfg := exportConfig(t)
	input, err := TransacoesDataInput([]models.Transacao{
		{Tipo: "saida", Descricao: "Cimento; lote 2", Valor: 350.5, Status: "ativo"},
	}, "Extrato")
	if err != nil {
		t.Fatal(err)
	}

	path, err := ExportToCSV(input, "extrato_teste", cfg)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(raw)
	if !strings.Contains(content, "Data;Tipo;Descrição") {
		t.Errorf("cabeçalho ausente:\n%s", content)
	}
	if !strings.Contains(content, "\"Cimento; lote 2\"") {
		t.Errorf("campo com delimitador deveria vir entre aspas:\n%s", content)
	}
}

func TestKPIDataInput(t *testing.T) {
	input, err := KPIDataInput(models.KPIReport{
		TotalOrcamentoAtual: 100000,
		TotalCustos:         40000,
		TotalReceitas:       60000,
		ObrasAtivas:         3,
		TotalObras:          5,
		ObrasConcluidas:     2,
	}, 20000)
	if err != nil {
		t.Fatal(err)
	}
	rows := input.Rows()
	if len(rows) != 7 {
		t.Fatalf("quer 7 indicadores, veio %d", len(rows))
	}
	if rows[3][0] != "Saldo Total" || rows[3][1] != "R$ 20.000,00" {
		t.Errorf("linha de saldo = %v", rows[3])
	}
}

func TestExportToCSVFalhaDeEscrita(t *testing.T) {
	cfg := exportConfig(t)
	// Um diretório com o nome do arquivo de saída faz o os.Create falhar.
	if err := os.Mkdir(filepath.Join(cfg.ExportDir, "extrato.csv"), 0o755); err != nil {
		t.Fatal(err)
	}
	input, err := NewSliceDataInput([][]string{{"A"}, {"1"}}, "Dados")
	if err != nil {
		t.Fatal(err)
	}

	_, err = ExportToCSV(input, "extrato", cfg)
	if !errors.Is(err, core.ErrExport) {
		t.Fatalf("falha de escrita = %v, quer ErrExport", err)
	}
}

func TestExportToXLSXFalhaDeEscrita(t *testing.T) {
	cfg := exportConfig(t)
	if err := os.Mkdir(filepath.Join(cfg.ExportDir, "relatorio.xlsx"), 0o755); err != nil {
		t.Fatal(err)
	}
	input, err := NewSliceDataInput([][]string{{"A"}, {"1"}}, "Dados")
	if err != nil {
		t.Fatal(err)
	}

	_, err = ExportToXLSX([]DataInput{input}, "relatorio", cfg)
	if !errors.Is(err, core.ErrExport) {
		t.Fatalf("falha de escrita = %v, quer ErrExport", err)
	}
}

func TestResolveOutputPathForcaExtensao(t *testing.T) {
	cfg := exportConfig(t)
	input, _ := NewSliceDataInput([][]string{{"A"}}, "X")
	path, err := ExportToXLSX([]DataInput{input}, "relatorio.txt", cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(path, "relatorio.xlsx") {
		t.Errorf("extensão deveria ser trocada para .xlsx: %s", path)
	}
}
