package model

// EnterpriseInfo 加工/报关企业信息，每个文件至多一条
type EnterpriseInfo struct {
	Name             string `json:"name"`
	CustomsCode      string `json:"customsCode"`
	SocialCreditCode string `json:"socialCreditCode"`
	LegalPerson      string `json:"legalPerson,omitempty"`
	Phone            string `json:"phone,omitempty"`
}

// CustomerInfo 客户/供应商信息
type CustomerInfo struct {
	Name             string `json:"name"`
	CustomsCode      string `json:"customsCode"`
	SocialCreditCode string `json:"socialCreditCode,omitempty"`
	EnglishName      string `json:"englishName,omitempty"`
}

// DeclarationInfo 核注清单信息，每个文件至多一条
type DeclarationInfo struct {
	SupervisionMode   string `json:"supervisionMode"`   // 监管方式
	RecordNumber      string `json:"recordNumber"`      // 备案编号
	ImportExportFlag  string `json:"importExportFlag"`  // 进出口标志
	EntryDate         string `json:"entryDate,omitempty"`         // 录入日期
	OperatingUnitName string `json:"operatingUnitName,omitempty"` // 经营单位名称
	OperatingUnitCode string `json:"operatingUnitCode,omitempty"` // 经营单位代码
}

// GoodsItem 商品明细行。数值字段用指针区分“未知”和“为零”，
// 合并时只有未知才回落到旧值。
type GoodsItem struct {
	GoodsName   string   `json:"goodsName"`
	HSCode      string   `json:"hsCode"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	UnitPrice   *float64 `json:"unitPrice,omitempty"`
	TotalPrice  *float64 `json:"totalPrice,omitempty"`
	Currency    string   `json:"currency,omitempty"`
	Origin      string   `json:"origin,omitempty"`
	NetWeight   *float64 `json:"netWeight,omitempty"`
	GrossWeight *float64 `json:"grossWeight,omitempty"`
	ItemCode    string   `json:"itemCode,omitempty"` // 货号/料号
	MatchKey    string   `json:"matchKey"`           // 跨文件匹配键
}

// ExtractedData 单个文件的提取汇总，构建后只读
type ExtractedData struct {
	Enterprise  *EnterpriseInfo  `json:"enterprise,omitempty"`
	Customers   []CustomerInfo   `json:"customers,omitempty"`
	Declaration *DeclarationInfo `json:"declaration,omitempty"`
	Goods       []GoodsItem      `json:"goods,omitempty"`
	TotalRows   int              `json:"totalRows"` // 总数据行数
}

// MergeLogEntry 合并日志，只追加，用于追溯每个取值的来源
type MergeLogEntry struct {
	Field      string  `json:"field"`
	SourceFile string  `json:"sourceFile"`
	Priority   float64 `json:"priority"`
	Reason     string  `json:"reason"`
}

// MergedData 多文件合并结果
type MergedData struct {
	Enterprise  *EnterpriseInfo  `json:"enterprise,omitempty"`
	Customers   []CustomerInfo   `json:"customers,omitempty"`
	Declaration *DeclarationInfo `json:"declaration,omitempty"`
	Goods       []GoodsItem      `json:"goods,omitempty"`
	TotalRows   int              `json:"totalRows"`
	MergeLogs   []MergeLogEntry  `json:"mergeLogs"`
	SourceFiles []string         `json:"sourceFiles"`
}
