package excel

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/wangpeng1017/0120guanwu/internal/model"
)

func f64(v float64) *float64 { return &v }

func buildWorkbook(t *testing.T) *bytes.Buffer {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "企业")
	f.SetCellValue("企业", "A1", "加工单位名称")
	f.SetCellValue("企业", "B1", "加工单位编码")
	f.SetCellValue("企业", "A2", "深圳某某电子有限公司")
	f.SetCellValue("企业", "B2", "4403123456")

	f.NewSheet("发票")
	f.SetCellValue("发票", "A1", "HS编码")
	f.SetCellValue("发票", "B1", "商品名称")
	f.SetCellValue("发票", "C1", "数量")
	f.SetCellValue("发票", "A2", "8512201000")
	f.SetCellValue("发票", "B2", "白炽灯")
	f.SetCellValue("发票", "C2", 1000)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("写入工作簿失败: %v", err)
	}
	return &buf
}

func TestReader_ReadWorkbook(t *testing.T) {
	t.Parallel()

	r := NewReader()
	sheets, err := r.ReadWorkbook(buildWorkbook(t))
	if err != nil {
		t.Fatalf("读取失败: %v", err)
	}

	if len(sheets) != 2 {
		t.Fatalf("sheets got=%d want=2", len(sheets))
	}
	if sheets[0].Name != "企业" || sheets[1].Name != "发票" {
		t.Fatalf("sheet names got=%s,%s", sheets[0].Name, sheets[1].Name)
	}
	if len(sheets[0].Rows) != 2 {
		t.Fatalf("rows got=%d want=2", len(sheets[0].Rows))
	}
	if got := sheets[0].Rows[1][0].String(); got != "深圳某某电子有限公司" {
		t.Fatalf("cell got=%s", got)
	}
	if got := sheets[1].Rows[1][2].String(); got != "1000" {
		t.Fatalf("numeric cell got=%s", got)
	}
}

func TestReader_ReadWorkbook_InvalidData(t *testing.T) {
	t.Parallel()

	r := NewReader()
	if _, err := r.ReadWorkbook(bytes.NewReader([]byte("not an xlsx"))); err == nil {
		t.Fatalf("expected error for invalid workbook")
	}
}

func TestExporter_ExportLetter(t *testing.T) {
	t.Parallel()

	e := NewExporter()
	letter := model.DelegationLetter{
		ClientCompanyName: "客户甲",
		ClientCustomsCode: "1111111111",
		AgentCompanyName:  "深圳某某电子有限公司",
		AgentCustomsCode:  "4403123456",
		DelegationType:    "long-term",
		ValidityPeriod:    "12",
		DelegationContent: []string{"办理进出口货物的报关、报检手续", "代缴相关税费"},
		SignDate:          "2025-01-20",
		Status:            model.LetterStatusInitiated,
	}

	f, err := e.ExportLetter(letter)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	defer f.Close()

	if title, _ := f.GetCellValue("委托书", "A1"); title != "电子代理报关委托书" {
		t.Fatalf("title got=%s", title)
	}
	if name, _ := f.GetCellValue("委托书", "B4"); name != "客户甲" {
		t.Fatalf("client name got=%s", name)
	}
	if agent, _ := f.GetCellValue("委托书", "B9"); agent != "深圳某某电子有限公司" {
		t.Fatalf("agent name got=%s", agent)
	}
	if dt, _ := f.GetCellValue("委托书", "B16"); dt != "长期委托" {
		t.Fatalf("delegation type got=%s", dt)
	}
	if period, _ := f.GetCellValue("委托书", "B17"); period != "12个月" {
		t.Fatalf("validity got=%s", period)
	}
	if status, _ := f.GetCellValue("委托书", "B20"); status != "已发起" {
		t.Fatalf("status got=%s", status)
	}
}

func TestExporter_ExportAgreements(t *testing.T) {
	t.Parallel()

	e := NewExporter()
	agreements := []model.DelegationAgreement{
		{
			SerialNumber:     1,
			MainGoodsName:    "机动车辆用白炽灯",
			HSCode:           "8512201000",
			TotalValue:       500,
			Currency:         "USD",
			Quantity:         f64(2000),
			Unit:             "个",
			TradeMode:        "区内物流货物",
			OriginPlace:      "泰国",
			ImportExportDate: "2025-01-25",
			AgreementStatus:  model.AgreementStatusPendingConfirmation,
		},
		{
			SerialNumber:    2,
			MainGoodsName:   "灯罩",
			HSCode:          "9405990000",
			TradeMode:       "一般贸易",
			OriginPlace:     "未知",
			AgreementStatus: model.AgreementStatusPendingConfirmation,
		},
	}

	f, err := e.ExportAgreements(agreements)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	defer f.Close()

	if title, _ := f.GetCellValue("委托协议", "A1"); title != "电子代理报关委托协议" {
		t.Fatalf("title got=%s", title)
	}
	if header, _ := f.GetCellValue("委托协议", "B3"); header != "主要货物名称" {
		t.Fatalf("header got=%s", header)
	}
	// 数据从第 4 行开始
	if serial, _ := f.GetCellValue("委托协议", "A4"); serial != "1" {
		t.Fatalf("serial got=%s", serial)
	}
	if name, _ := f.GetCellValue("委托协议", "B4"); name != "机动车辆用白炽灯" {
		t.Fatalf("goods name got=%s", name)
	}
	if mode, _ := f.GetCellValue("委托协议", "H4"); mode != "区内物流货物" {
		t.Fatalf("trade mode got=%s", mode)
	}
	if status, _ := f.GetCellValue("委托协议", "K4"); status != "待确认" {
		t.Fatalf("status got=%s", status)
	}
	// 数量未知导出为空
	if quantity, _ := f.GetCellValue("委托协议", "D5"); quantity != "" {
		t.Fatalf("empty quantity got=%s", quantity)
	}
	if name, _ := f.GetCellValue("委托协议", "B5"); name != "灯罩" {
		t.Fatalf("second goods name got=%s", name)
	}
}

func TestExporter_ExportAgreements_Empty(t *testing.T) {
	t.Parallel()

	e := NewExporter()
	f, err := e.ExportAgreements(nil)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	defer f.Close()

	// 只有标题和表头
	if header, _ := f.GetCellValue("委托协议", "A3"); header != "序号" {
		t.Fatalf("header got=%s", header)
	}
	if cell, _ := f.GetCellValue("委托协议", "A4"); cell != "" {
		t.Fatalf("unexpected data row: %s", cell)
	}
}
