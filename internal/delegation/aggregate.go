package delegation

import "github.com/wangpeng1017/0120guanwu/internal/model"

// SheetData 一个已物化的 sheet：名称 + 行数据
type SheetData struct {
	Name string
	Rows []Row
}

// ClassifiedSheet 已完成类型识别的 sheet
type ClassifiedSheet struct {
	Classification model.SheetClassification
	Rows           []Row
}

// ClassifySheets 对一个文件内的全部 sheet 做类型识别
func ClassifySheets(sheets []SheetData) []ClassifiedSheet {
	classified := make([]ClassifiedSheet, len(sheets))
	for i, s := range sheets {
		classified[i] = ClassifiedSheet{
			Classification: ClassifySheet(s.Name, s.Rows),
			Rows:           s.Rows,
		}
	}
	return classified
}

// ExtractDataFromFile 汇总一个文件内所有 sheet 的提取结果。
// 企业/客户/核注清单取文件内第一个命中的 sheet；
// 商品明细在发票和装箱单之间追加累积；
// 总行数累加全部 sheet（包括未识别的）的有效数据行。
func (e *Extractor) ExtractDataFromFile(sheets []ClassifiedSheet) model.ExtractedData {
	var result model.ExtractedData

	for _, sheet := range sheets {
		switch sheet.Classification.Type {
		case model.SheetTypeEnterprise:
			if result.Enterprise == nil {
				result.Enterprise = e.ExtractEnterpriseInfo(sheet.Rows)
			}

		case model.SheetTypeCustomer:
			if result.Customers == nil {
				result.Customers = e.ExtractCustomerInfo(sheet.Rows)
			}

		case model.SheetTypeDeclaration:
			if result.Declaration == nil {
				result.Declaration = e.ExtractDeclarationInfo(sheet.Rows)
			}

		case model.SheetTypeInvoice, model.SheetTypePacking:
			result.Goods = append(result.Goods, e.ExtractGoodsItems(sheet.Rows)...)
		}

		result.TotalRows += sheet.Classification.DataRowCount
	}

	return result
}
