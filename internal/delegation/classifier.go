package delegation

import (
	"strings"

	"github.com/wangpeng1017/0120guanwu/internal/model"
)

// 内容识别最多扫描的行数。表头位置不固定，但不会埋得比这更深。
const classifyScanRows = 20

// ClassifySheet 识别单个 sheet 的语义类型。
// 规则优先级：sheet 名精确匹配 > sheet 名包含匹配 > 表头关键词共现。
// 名称规则在制表方遵守惯例时几乎总是正确，内容规则兜底处理乱命名的表。
func ClassifySheet(sheetName string, rows []Row) model.SheetClassification {
	dataRows := countDataRows(rows)

	result := func(t model.SheetType, confidence float64) model.SheetClassification {
		return model.SheetClassification{
			SheetName:    sheetName,
			Type:         t,
			Confidence:   confidence,
			DataRowCount: dataRows,
		}
	}

	// 1. sheet 名称精确匹配
	switch sheetName {
	case "企业":
		return result(model.SheetTypeEnterprise, 1.0)
	case "客户供应商":
		return result(model.SheetTypeCustomer, 1.0)
	case "核注清单":
		return result(model.SheetTypeDeclaration, 1.0)
	}

	// 2. sheet 名称包含匹配
	if strings.Contains(sheetName, "发票") {
		return result(model.SheetTypeInvoice, 0.9)
	}
	if strings.Contains(sheetName, "装箱") {
		return result(model.SheetTypePacking, 0.9)
	}

	// 3. 表头字段共现匹配
	headers := flattenRows(rows, classifyScanRows)

	if strings.Contains(headers, "加工单位编码") || strings.Contains(headers, "加工单位名称") {
		return result(model.SheetTypeEnterprise, 0.8)
	}
	if strings.Contains(headers, "单位代码") && strings.Contains(headers, "单位名称") {
		return result(model.SheetTypeCustomer, 0.8)
	}
	if strings.Contains(headers, "监管方式") && strings.Contains(headers, "备案编号") {
		return result(model.SheetTypeDeclaration, 0.8)
	}
	if strings.Contains(headers, "hs编码") && strings.Contains(headers, "总价") {
		return result(model.SheetTypeInvoice, 0.7)
	}
	if strings.Contains(headers, "净重") && strings.Contains(headers, "毛重") {
		return result(model.SheetTypePacking, 0.7)
	}

	return result(model.SheetTypeUnknown, 0)
}

// countDataRows 统计至少有一个非空单元格的行数
func countDataRows(rows []Row) int {
	count := 0
	for _, row := range rows {
		if row.hasContent() {
			count++
		}
	}
	return count
}

// flattenRows 把前 limit 行的所有单元格拼成一个小写字符串
func flattenRows(rows []Row, limit int) string {
	if len(rows) < limit {
		limit = len(rows)
	}
	var sb strings.Builder
	for i := 0; i < limit; i++ {
		for _, c := range rows[i] {
			sb.WriteString(c.String())
			sb.WriteString("|")
		}
	}
	return strings.ToLower(sb.String())
}
