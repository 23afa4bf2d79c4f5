package delegation

import (
	"math"
	"strings"

	"github.com/wangpeng1017/0120guanwu/internal/model"
)

// 表头搜索最多扫描的行数
const headerSearchRows = 20

// Extractor 结构化字段提取器
type Extractor struct {
	aliases AliasTable
}

// NewExtractor 使用内置别名表创建提取器
func NewExtractor() *Extractor {
	return &Extractor{aliases: DefaultAliases()}
}

// NewExtractorWithAliases 使用自定义别名表创建提取器
func NewExtractorWithAliases(aliases AliasTable) *Extractor {
	return &Extractor{aliases: aliases}
}

// FindHeaderRow 在前 20 行中定位表头行：整行拼成小写字符串后，
// 至少命中一半关键词即认定。标题行、空行、备注行都排在真正的表头前面，
// 找不到时退回第 0 行。
func FindHeaderRow(rows []Row, keywords []string) int {
	limit := headerSearchRows
	if len(rows) < limit {
		limit = len(rows)
	}

	need := int(math.Ceil(float64(len(keywords)) / 2))

	for i := 0; i < limit; i++ {
		rowText := rows[i].joinLower("|")
		matched := 0
		for _, kw := range keywords {
			if strings.Contains(rowText, strings.ToLower(kw)) {
				matched++
			}
		}
		if matched >= need {
			return i
		}
	}

	return 0
}

// FindColumnIndex 按别名表解析列索引。大小写不敏感，
// 双向包含匹配（表头含别名，或别名含表头），首个命中的列生效；
// 空表头不参与匹配。找不到返回 -1，调用方把该字段当作不可用。
func FindColumnIndex(headers Row, aliases []string) int {
	normalized := make([]string, len(aliases))
	for i, a := range aliases {
		normalized[i] = strings.ToLower(strings.TrimSpace(a))
	}

	for i, cell := range headers {
		h := strings.ToLower(strings.TrimSpace(cell.String()))
		if h == "" {
			continue
		}
		for _, alias := range normalized {
			if strings.Contains(h, alias) || strings.Contains(alias, h) {
				return i
			}
		}
	}

	return -1
}

// ExtractEnterpriseInfo 从企业 sheet 提取加工单位信息。
// 单记录类型：只读表头的下一行；两项标识字段都为空时视为无数据。
func (e *Extractor) ExtractEnterpriseInfo(rows []Row) *model.EnterpriseInfo {
	if len(rows) < 2 {
		return nil
	}

	headerRow := FindHeaderRow(rows, enterpriseHeaderKeywords)
	if headerRow >= len(rows)-1 {
		return nil
	}

	headers := rows[headerRow]
	dataRow := rows[headerRow+1]

	nameIdx := FindColumnIndex(headers, e.aliases[fieldEnterpriseName])
	codeIdx := FindColumnIndex(headers, e.aliases[fieldEnterpriseCode])
	creditIdx := FindColumnIndex(headers, e.aliases[fieldEnterpriseCredit])
	legalIdx := FindColumnIndex(headers, e.aliases[fieldLegalPerson])
	phoneIdx := FindColumnIndex(headers, e.aliases[fieldPhone])

	name := cellString(dataRow, nameIdx)
	customsCode := cellString(dataRow, codeIdx)

	if name == "" && customsCode == "" {
		return nil
	}

	return &model.EnterpriseInfo{
		Name:             name,
		CustomsCode:      customsCode,
		SocialCreditCode: cellString(dataRow, creditIdx),
		LegalPerson:      cellString(dataRow, legalIdx),
		Phone:            cellString(dataRow, phoneIdx),
	}
}

// ExtractCustomerInfo 从客户供应商 sheet 提取全部客户记录。
// 名称和代码都为空的行跳过。
func (e *Extractor) ExtractCustomerInfo(rows []Row) []model.CustomerInfo {
	if len(rows) < 2 {
		return nil
	}

	headerRow := FindHeaderRow(rows, customerHeaderKeywords)
	if headerRow >= len(rows)-1 {
		return nil
	}

	headers := rows[headerRow]

	nameIdx := FindColumnIndex(headers, e.aliases[fieldCustomerName])
	codeIdx := FindColumnIndex(headers, e.aliases[fieldCustomerCode])
	creditIdx := FindColumnIndex(headers, e.aliases[fieldCustomerCredit])
	englishIdx := FindColumnIndex(headers, e.aliases[fieldCustomerEnglish])

	var customers []model.CustomerInfo

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]

		name := cellString(row, nameIdx)
		customsCode := cellString(row, codeIdx)
		if name == "" && customsCode == "" {
			continue
		}

		customers = append(customers, model.CustomerInfo{
			Name:             name,
			CustomsCode:      customsCode,
			SocialCreditCode: cellString(row, creditIdx),
			EnglishName:      cellString(row, englishIdx),
		})
	}

	return customers
}

// ExtractDeclarationInfo 从核注清单 sheet 提取清单信息。
// 单记录类型，规则与企业信息相同。
func (e *Extractor) ExtractDeclarationInfo(rows []Row) *model.DeclarationInfo {
	if len(rows) < 2 {
		return nil
	}

	headerRow := FindHeaderRow(rows, declarationHeaderKeywords)
	if headerRow >= len(rows)-1 {
		return nil
	}

	headers := rows[headerRow]
	dataRow := rows[headerRow+1]

	modeIdx := FindColumnIndex(headers, e.aliases[fieldSupervisionMode])
	recordIdx := FindColumnIndex(headers, e.aliases[fieldRecordNumber])
	flagIdx := FindColumnIndex(headers, e.aliases[fieldImportExportFlag])
	dateIdx := FindColumnIndex(headers, e.aliases[fieldEntryDate])
	unitNameIdx := FindColumnIndex(headers, e.aliases[fieldOperatingUnitName])
	unitCodeIdx := FindColumnIndex(headers, e.aliases[fieldOperatingUnitCode])

	supervisionMode := cellString(dataRow, modeIdx)
	recordNumber := cellString(dataRow, recordIdx)

	if supervisionMode == "" && recordNumber == "" {
		return nil
	}

	return &model.DeclarationInfo{
		SupervisionMode:   supervisionMode,
		RecordNumber:      recordNumber,
		ImportExportFlag:  cellString(dataRow, flagIdx),
		EntryDate:         cellString(dataRow, dateIdx),
		OperatingUnitName: cellString(dataRow, unitNameIdx),
		OperatingUnitCode: cellString(dataRow, unitCodeIdx),
	}
}

// ExtractGoodsItems 从发票/装箱单 sheet 提取商品明细。
// 跳过空行和汇总行（合计/总计/小计）；数值字段宽松解析，
// 解析失败置为未知，让合并阶段能区分“没有值”和“值为零”。
func (e *Extractor) ExtractGoodsItems(rows []Row) []model.GoodsItem {
	if len(rows) < 2 {
		return nil
	}

	headerRow := FindHeaderRow(rows, goodsHeaderKeywords)
	if headerRow >= len(rows)-1 {
		return nil
	}

	headers := rows[headerRow]

	hsCodeIdx := FindColumnIndex(headers, e.aliases[fieldHSCode])
	goodsNameIdx := FindColumnIndex(headers, e.aliases[fieldGoodsName])
	quantityIdx := FindColumnIndex(headers, e.aliases[fieldQuantity])
	unitIdx := FindColumnIndex(headers, e.aliases[fieldUnit])
	unitPriceIdx := FindColumnIndex(headers, e.aliases[fieldUnitPrice])
	totalPriceIdx := FindColumnIndex(headers, e.aliases[fieldTotalPrice])
	originIdx := FindColumnIndex(headers, e.aliases[fieldOrigin])
	netWeightIdx := FindColumnIndex(headers, e.aliases[fieldNetWeight])
	grossWeightIdx := FindColumnIndex(headers, e.aliases[fieldGrossWeight])
	itemCodeIdx := FindColumnIndex(headers, e.aliases[fieldItemCode])

	var items []model.GoodsItem

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]

		if !row.hasContent() {
			continue
		}

		rowText := row.joinLower("")
		if containsAny(rowText, summaryRowMarkers) {
			continue
		}

		hsCode := cellString(row, hsCodeIdx)
		goodsName := cellString(row, goodsNameIdx)
		if hsCode == "" && goodsName == "" {
			continue
		}

		item := model.GoodsItem{
			HSCode:      hsCode,
			GoodsName:   goodsName,
			Quantity:    cellNumber(row, quantityIdx),
			Unit:        cellString(row, unitIdx),
			UnitPrice:   cellNumber(row, unitPriceIdx),
			TotalPrice:  cellNumber(row, totalPriceIdx),
			Origin:      cellString(row, originIdx),
			NetWeight:   cellNumber(row, netWeightIdx),
			GrossWeight: cellNumber(row, grossWeightIdx),
			ItemCode:    cellString(row, itemCodeIdx),
		}
		item.MatchKey = GenerateMatchKey(item)

		items = append(items, item)
	}

	return items
}

// GenerateMatchKey 生成商品匹配键。
// 优先级 HS编码 > 货号 > 商品名称，对应商业标识符可靠性的递减；
// 全部为空时返回 UNKNOWN 哨兵值，保证匹配键永不为空。
func GenerateMatchKey(item model.GoodsItem) string {
	if hs := strings.TrimSpace(item.HSCode); hs != "" {
		return "HS:" + hs
	}
	if code := strings.TrimSpace(item.ItemCode); code != "" {
		return "CODE:" + code
	}
	if name := strings.TrimSpace(item.GoodsName); name != "" {
		return "NAME:" + name
	}
	return "UNKNOWN"
}

// cellString 取指定列的字符串值并去首尾空白；列不可用时返回 ""
func cellString(row Row, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx].String())
}

// cellNumber 取指定列的数值；列不可用或无法解析时返回 nil
func cellNumber(row Row, idx int) *float64 {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	c := row[idx]
	if c.IsEmpty() {
		return nil
	}
	n, ok := c.Float()
	if !ok {
		return nil
	}
	return &n
}

// containsAny 文本是否包含任意一个关键词
func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
