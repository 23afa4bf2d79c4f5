package delegation

// AliasTable 逻辑字段 -> 表头别名列表。
// 不同贸易伙伴的表头叫法五花八门，列解析完全依赖这张表；
// 遇到新叫法只需在这里补充，不用改提取逻辑。
type AliasTable map[string][]string

// 逻辑字段名
const (
	fieldEnterpriseName   = "enterpriseName"
	fieldEnterpriseCode   = "enterpriseCode"
	fieldEnterpriseCredit = "enterpriseCredit"
	fieldLegalPerson      = "legalPerson"
	fieldPhone            = "phone"

	fieldCustomerName    = "customerName"
	fieldCustomerCode    = "customerCode"
	fieldCustomerCredit  = "customerCredit"
	fieldCustomerEnglish = "customerEnglish"

	fieldSupervisionMode   = "supervisionMode"
	fieldRecordNumber      = "recordNumber"
	fieldImportExportFlag  = "importExportFlag"
	fieldEntryDate         = "entryDate"
	fieldOperatingUnitName = "operatingUnitName"
	fieldOperatingUnitCode = "operatingUnitCode"

	fieldHSCode      = "hsCode"
	fieldGoodsName   = "goodsName"
	fieldQuantity    = "quantity"
	fieldUnit        = "unit"
	fieldUnitPrice   = "unitPrice"
	fieldTotalPrice  = "totalPrice"
	fieldOrigin      = "origin"
	fieldNetWeight   = "netWeight"
	fieldGrossWeight = "grossWeight"
	fieldItemCode    = "itemCode"
)

// DefaultAliases 内置别名表，来自实际单证样本
func DefaultAliases() AliasTable {
	return AliasTable{
		// 企业 sheet
		fieldEnterpriseName:   {"加工单位名称", "单位名称", "企业名称"},
		fieldEnterpriseCode:   {"加工单位编码", "单位编码", "海关编码"},
		fieldEnterpriseCredit: {"加工单位三证合一代码", "三证合一代码", "统一社会信用代码"},
		fieldLegalPerson:      {"加工单位法人代表", "法人代表", "法人"},
		fieldPhone:            {"加工单位联系电话", "联系电话", "电话"},

		// 客户供应商 sheet
		fieldCustomerName:    {"单位名称", "客户名称", "供应商名称"},
		fieldCustomerCode:    {"单位代码", "客户代码", "海关编码"},
		fieldCustomerCredit:  {"三证合一代码", "统一社会信用代码"},
		fieldCustomerEnglish: {"单位英文名", "英文名称", "English Name"},

		// 核注清单 sheet
		fieldSupervisionMode:   {"监管方式", "贸易方式"},
		fieldRecordNumber:      {"备案编号", "账册编号"},
		fieldImportExportFlag:  {"进出口标志", "进出口"},
		fieldEntryDate:         {"录入日期", "日期", "申报日期"},
		fieldOperatingUnitName: {"经营单位名称", "经营单位"},
		fieldOperatingUnitCode: {"经营单位代码"},

		// 发票/装箱单商品明细
		fieldHSCode:      {"HS编码", "商品HS编码", "商品编码", "HS CODE"},
		fieldGoodsName:   {"商品名称", "品名", "货物名称", "DESCRIPTION", "Description&Specification"},
		fieldQuantity:    {"数量", "数  量", "QTY", "Qty"},
		fieldUnit:        {"单位", "UNIT", "Unit"},
		fieldUnitPrice:   {"单价", "UNIT PRICE", "Unit Price"},
		fieldTotalPrice:  {"总价", "总金额", "AMOUNT", "金额", "Amount"},
		fieldOrigin:      {"原产国", "原产地", "产地", "ORIGIN", "原产国/地区"},
		fieldNetWeight:   {"净重", "净重（千克）", "N/W", "N/W(KG)"},
		fieldGrossWeight: {"毛重", "毛重（千克）", "G/W", "G/W(KG)"},
		fieldItemCode:    {"货号", "料号", "企业料号", "金二料号", "合捷货号"},
	}
}

// 各类 sheet 的表头定位关键词
var (
	enterpriseHeaderKeywords  = []string{"加工单位名称", "加工单位编码"}
	customerHeaderKeywords    = []string{"单位名称", "单位代码"}
	declarationHeaderKeywords = []string{"监管方式", "备案编号"}
	goodsHeaderKeywords       = []string{"HS编码", "商品名称"}
)

// 汇总行标记，命中即跳过该行
var summaryRowMarkers = []string{"合计", "总计", "小计"}
