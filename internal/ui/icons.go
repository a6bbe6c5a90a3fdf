package ui

import (
	"gioui.org/widget"
	"golang.org/x/exp/shiny/materialdesign/icons"

	appLogger "github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/core/logger"
	"github.com/Dukorsa/APP_GESTAO_OBRAS_GO/internal/auth"
)

// Ícones Material usados pela aplicação, criados uma única vez no init.
var (
	IconDashboard   *widget.Icon
	IconInventario  *widget.Icon
	IconFinanceiro  *widget.Icon
	IconChecklist   *widget.Icon
	IconDocumentos  *widget.Icon
	IconFuncionario *widget.Icon
	IconRelatorios  *widget.Icon
	IconMarketplace *widget.Icon

	IconAdd      *widget.Icon
	IconEdit     *widget.Icon
	IconDelete   *widget.Icon
	IconClose    *widget.Icon
	IconBack     *widget.Icon
	IconRefresh  *widget.Icon
	IconLogout   *widget.Icon
	IconUser     *widget.Icon
	IconLock     *widget.Icon
	IconHistory  *widget.Icon
	IconExport   *widget.Icon
	IconAttach   *widget.Icon
	IconWarning  *widget.Icon
	IconEye      *widget.Icon
	IconEyeOff   *widget.Icon
	IconSearch   *widget.Icon
	IconDownload *widget.Icon
	IconImage    *widget.Icon
)

func mustIcon(data []byte) *widget.Icon {
	ic, err := widget.NewIcon(data)
	if err != nil {
		// Ícone embutido inválido é erro de programação, não de runtime.
		appLogger.Fatalf("Falha ao criar ícone material: %v", err)
	}
	return ic
}

func init() {
	IconDashboard = mustIcon(icons.ActionDashboard)
	IconInventario = mustIcon(icons.ActionShoppingBasket)
	IconFinanceiro = mustIcon(icons.EditorAttachMoney)
	IconChecklist = mustIcon(icons.ActionCheckCircle)
	IconDocumentos = mustIcon(icons.ActionDescription)
	IconFuncionario = mustIcon(icons.SocialGroup)
	IconRelatorios = mustIcon(icons.EditorInsertChart)
	IconMarketplace = mustIcon(icons.ActionStore)

	IconAdd = mustIcon(icons.ContentAdd)
	IconEdit = mustIcon(icons.ImageEdit)
	IconDelete = mustIcon(icons.ActionDelete)
	IconClose = mustIcon(icons.NavigationClose)
	IconBack = mustIcon(icons.NavigationArrowBack)
	IconRefresh = mustIcon(icons.NavigationRefresh)
	IconLogout = mustIcon(icons.ActionExitToApp)
	IconUser = mustIcon(icons.SocialPerson)
	IconLock = mustIcon(icons.ActionLock)
	IconHistory = mustIcon(icons.ActionHistory)
	IconExport = mustIcon(icons.FileFileDownload)
	IconAttach = mustIcon(icons.EditorAttachFile)
	IconWarning = mustIcon(icons.AlertWarning)
	IconEye = mustIcon(icons.ActionVisibility)
	IconEyeOff = mustIcon(icons.ActionVisibilityOff)
	IconSearch = mustIcon(icons.ActionSearch)
	IconDownload = mustIcon(icons.FileFileDownload)
	IconImage = mustIcon(icons.ImageImage)
}

// ViewIcon retorna o ícone da entrada de navegação correspondente.
func ViewIcon(v auth.ViewID) *widget.Icon {
	switch v {
	case auth.ViewDashboard:
		return IconDashboard
	case auth.ViewInventario:
		return IconInventario
	case auth.ViewFinanceiro:
		return IconFinanceiro
	case auth.ViewChecklist:
		return IconChecklist
	case auth.ViewDocumentos:
		return IconDocumentos
	case auth.ViewFuncionarios:
		return IconFuncionario
	case auth.ViewRelatorios:
		return IconRelatorios
	case auth.ViewMarketplace:
		return IconMarketplace
	}
	return IconDashboard
}
