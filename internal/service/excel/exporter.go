package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/wangpeng1017/0120guanwu/internal/model"
)

// Exporter 委托文书 Excel 导出器
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// ExportLetter 导出委托书工作簿
func (e *Exporter) ExportLetter(letter model.DelegationLetter) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "委托书"
	f.SetSheetName("Sheet1", sheetName)

	delegationType := "单次委托"
	if letter.DelegationType == "long-term" {
		delegationType = "长期委托"
	}

	rows := [][]interface{}{
		{"电子代理报关委托书"},
		{},
		{"一、委托方信息"},
		{"企业名称", letter.ClientCompanyName},
		{"海关编码", letter.ClientCustomsCode},
		{"统一社会信用代码", letter.ClientSocialCreditCode},
		{},
		{"二、被委托方信息"},
		{"企业名称", letter.AgentCompanyName},
		{"海关编码", letter.AgentCustomsCode},
		{"统一社会信用代码", letter.AgentSocialCreditCode},
		{"授权签字人", letter.AgentAuthorizedSigner},
		{"联系电话", letter.AgentContactPhone},
		{},
		{"三、委托关系"},
		{"委托类型", delegationType},
		{"委托有效期", letter.ValidityPeriod + "个月"},
		{"委托内容", joinContent(letter.DelegationContent)},
		{"签署日期", letter.SignDate},
		{"状态", letterStatusText(letter.Status)},
	}

	if err := writeRows(f, sheetName, rows); err != nil {
		return nil, err
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.MergeCell(sheetName, "A1", "B1")
	f.SetCellStyle(sheetName, "A1", "B1", titleStyle)

	f.SetColWidth(sheetName, "A", "A", 20)
	f.SetColWidth(sheetName, "B", "B", 50)

	return f, nil
}

// ExportAgreements 导出委托协议清单工作簿
func (e *Exporter) ExportAgreements(agreements []model.DelegationAgreement) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "委托协议"
	f.SetSheetName("Sheet1", sheetName)

	headers := []interface{}{
		"序号", "主要货物名称", "HS编码", "数量", "单位",
		"总值", "币种", "贸易方式", "原产地", "进出口日期", "状态",
	}

	rows := [][]interface{}{
		{"电子代理报关委托协议"},
		{},
		headers,
	}

	for _, item := range agreements {
		quantity := interface{}("")
		if item.Quantity != nil {
			quantity = *item.Quantity
		}
		rows = append(rows, []interface{}{
			item.SerialNumber,
			item.MainGoodsName,
			item.HSCode,
			quantity,
			item.Unit,
			item.TotalValue,
			item.Currency,
			item.TradeMode,
			item.OriginPlace,
			item.ImportExportDate,
			agreementStatusText(item.AgreementStatus),
		})
	}

	if err := writeRows(f, sheetName, rows); err != nil {
		return nil, err
	}

	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.MergeCell(sheetName, "A1", "K1")
	f.SetCellStyle(sheetName, "A1", "K1", titleStyle)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(sheetName, 3, 3, headerStyle)

	f.SetColWidth(sheetName, "A", "A", 8)
	f.SetColWidth(sheetName, "B", "B", 30)
	f.SetColWidth(sheetName, "C", "C", 15)
	f.SetColWidth(sheetName, "D", "E", 10)
	f.SetColWidth(sheetName, "F", "G", 12)
	f.SetColWidth(sheetName, "H", "H", 20)
	f.SetColWidth(sheetName, "I", "K", 12)

	return f, nil
}

func writeRows(f *excelize.File, sheetName string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("计算单元格坐标失败: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, val); err != nil {
				return fmt.Errorf("写入单元格 %s 失败: %w", cell, err)
			}
		}
	}
	return nil
}

func joinContent(content []string) string {
	out := ""
	for i, c := range content {
		if i > 0 {
			out += "；"
		}
		out += c
	}
	return out
}

func letterStatusText(status model.LetterStatus) string {
	switch status {
	case model.LetterStatusInitiated:
		return "已发起"
	case model.LetterStatusConfirmed:
		return "已确认"
	case model.LetterStatusRejected:
		return "已拒绝"
	case model.LetterStatusExpired:
		return "已过期"
	case model.LetterStatusTerminated:
		return "已终止"
	}
	return ""
}

func agreementStatusText(status model.AgreementStatus) string {
	switch status {
	case model.AgreementStatusPendingConfirmation:
		return "待确认"
	case model.AgreementStatusSentToCustoms:
		return "已发海关"
	case model.AgreementStatusReadyForDeclaration:
		return "待申报"
	case model.AgreementStatusRejected:
		return "已拒绝"
	case model.AgreementStatusInUse:
		return "正使用"
	case model.AgreementStatusUsedByCustoms:
		return "海关已用"
	case model.AgreementStatusExpired:
		return "已过期"
	case model.AgreementStatusCancellationPending:
		return "撤销待确认"
	case model.AgreementStatusCancellationConfirmed:
		return "撤销已确认"
	case model.AgreementStatusCancelled:
		return "撤销成功"
	case model.AgreementStatusCreationFailed:
		return "新增失败"
	case model.AgreementStatusCancellationFailed:
		return "撤销失败"
	}
	return ""
}
