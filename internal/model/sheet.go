package model

// SheetType 工作表语义类型（用于输入容错识别）
type SheetType string

const (
	SheetTypeEnterprise  SheetType = "enterprise"  // 企业信息
	SheetTypeCustomer    SheetType = "customer"    // 客户供应商
	SheetTypeInvoice     SheetType = "invoice"     // 发票
	SheetTypePacking     SheetType = "packing"     // 装箱单
	SheetTypeDeclaration SheetType = "declaration" // 核注清单
	SheetTypeUnknown     SheetType = "unknown"     // 未知类型
)

// SheetClassification 单个 sheet 的识别结果
type SheetClassification struct {
	SheetName    string    `json:"sheetName"`
	Type         SheetType `json:"type"`
	Confidence   float64   `json:"confidence"`   // 置信度 0-1
	DataRowCount int       `json:"dataRowCount"` // 有效数据行数
}
