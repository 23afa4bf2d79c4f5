package delegation

import (
	"fmt"
	"sort"

	"github.com/wangpeng1017/0120guanwu/internal/model"
)

// FileData 一个文件的提取结果
type FileData struct {
	FileName string
	Data     model.ExtractedData
}

type fileWithPriority struct {
	FileName string
	Data     model.ExtractedData
	Priority float64
}

// MergeExcelData 把一个批次内所有文件的提取结果合并成一份权威数据。
// 先给每个文件计算优先级，再按优先级做确定性合并；
// 每一次取值决策都写入合并日志。
func MergeExcelData(files []FileData) model.MergedData {
	withPriority := make([]fileWithPriority, len(files))
	for i, f := range files {
		withPriority[i] = fileWithPriority{
			FileName: f.FileName,
			Data:     f.Data,
			Priority: CalculateFilePriority(f.Data),
		}
	}

	enterprise, enterpriseLogs := mergeEnterpriseInfo(withPriority)
	customers, customerLogs := mergeCustomerInfo(withPriority)
	declaration, declarationLogs := mergeDeclarationInfo(withPriority)
	goods, goodsLogs := mergeGoodsItems(withPriority)

	logs := make([]model.MergeLogEntry, 0, len(enterpriseLogs)+len(customerLogs)+len(declarationLogs)+len(goodsLogs))
	logs = append(logs, enterpriseLogs...)
	logs = append(logs, customerLogs...)
	logs = append(logs, declarationLogs...)
	logs = append(logs, goodsLogs...)

	totalRows := 0
	sourceFiles := make([]string, len(files))
	for i, f := range files {
		totalRows += f.Data.TotalRows
		sourceFiles[i] = f.FileName
	}

	return model.MergedData{
		Enterprise:  enterprise,
		Customers:   customers,
		Declaration: declaration,
		Goods:       goods,
		TotalRows:   totalRows,
		MergeLogs:   logs,
		SourceFiles: sourceFiles,
	}
}

// mergeEnterpriseInfo 企业信息整体取优先级最高的文件，不做字段级合并：
// 它是文件范围内的原子事实。
func mergeEnterpriseInfo(files []fileWithPriority) (*model.EnterpriseInfo, []model.MergeLogEntry) {
	var selected *fileWithPriority
	for i := range files {
		if files[i].Data.Enterprise == nil {
			continue
		}
		if selected == nil || files[i].Priority > selected.Priority {
			selected = &files[i]
		}
	}

	if selected == nil {
		return nil, nil
	}

	logs := []model.MergeLogEntry{{
		Field:      "enterprise",
		SourceFile: selected.FileName,
		Priority:   selected.Priority,
		Reason:     fmt.Sprintf("选择优先级最高的文件（优先级: %.1f）", selected.Priority),
	}}

	return selected.Data.Enterprise, logs
}

// mergeDeclarationInfo 核注清单与企业信息同规则
func mergeDeclarationInfo(files []fileWithPriority) (*model.DeclarationInfo, []model.MergeLogEntry) {
	var selected *fileWithPriority
	for i := range files {
		if files[i].Data.Declaration == nil {
			continue
		}
		if selected == nil || files[i].Priority > selected.Priority {
			selected = &files[i]
		}
	}

	if selected == nil {
		return nil, nil
	}

	logs := []model.MergeLogEntry{{
		Field:      "declaration",
		SourceFile: selected.FileName,
		Priority:   selected.Priority,
		Reason:     fmt.Sprintf("选择优先级最高的文件（优先级: %.1f）", selected.Priority),
	}}

	return selected.Data.Declaration, logs
}

// mergeCustomerInfo 客户按海关编码（缺省用名称）去重。
// 按优先级从低到高扫描，高优先级文件的同键记录整体覆盖低优先级的；
// 覆盖发生时记一条日志。结果保持首次出现的键顺序，保证合并可复现。
func mergeCustomerInfo(files []fileWithPriority) ([]model.CustomerInfo, []model.MergeLogEntry) {
	sorted := sortByPriority(files)

	type entry struct {
		customer model.CustomerInfo
		priority float64
	}

	seen := make(map[string]*entry)
	var keyOrder []string
	var logs []model.MergeLogEntry
	hasCustomers := false

	for _, f := range sorted {
		if f.Data.Customers == nil {
			continue
		}
		hasCustomers = true

		for _, customer := range f.Data.Customers {
			key := customer.CustomsCode
			if key == "" {
				key = customer.Name
			}

			existing, ok := seen[key]
			if !ok {
				seen[key] = &entry{customer: customer, priority: f.Priority}
				keyOrder = append(keyOrder, key)
				continue
			}

			if f.Priority > existing.priority {
				existing.customer = customer
				existing.priority = f.Priority
				logs = append(logs, model.MergeLogEntry{
					Field:      "customer",
					SourceFile: f.FileName,
					Priority:   f.Priority,
					Reason:     fmt.Sprintf("客户 %s（编码: %s）来自优先级更高的文件", customer.Name, customer.CustomsCode),
				})
			}
		}
	}

	if !hasCustomers {
		return nil, logs
	}

	result := make([]model.CustomerInfo, 0, len(keyOrder))
	for _, key := range keyOrder {
		result = append(result, seen[key].customer)
	}
	return result, logs
}

// mergeGoodsItems 商品按匹配键合并。
// 首次见到某键时插入；更高优先级的同键记录做字段级合并：
// 新记录有值的字段覆盖，没有值的字段保留旧值。
// 这让发票补齐价格字段的同时，核注清单仍能提供权威的贸易信息。
func mergeGoodsItems(files []fileWithPriority) ([]model.GoodsItem, []model.MergeLogEntry) {
	sorted := sortByPriority(files)

	type entry struct {
		item     model.GoodsItem
		priority float64
	}

	seen := make(map[string]*entry)
	var keyOrder []string
	var logs []model.MergeLogEntry
	hasGoods := false

	for _, f := range sorted {
		if f.Data.Goods == nil {
			continue
		}
		hasGoods = true

		for _, item := range f.Data.Goods {
			key := item.MatchKey

			existing, ok := seen[key]
			if !ok {
				seen[key] = &entry{item: item, priority: f.Priority}
				keyOrder = append(keyOrder, key)
				logs = append(logs, model.MergeLogEntry{
					Field:      "goods",
					SourceFile: f.FileName,
					Priority:   f.Priority,
					Reason:     fmt.Sprintf("新增商品: %s（匹配键: %s）", item.GoodsName, key),
				})
				continue
			}

			if f.Priority > existing.priority {
				existing.item = mergeGoodsFields(existing.item, item, key)
				existing.priority = f.Priority
				logs = append(logs, model.MergeLogEntry{
					Field:      "goods",
					SourceFile: f.FileName,
					Priority:   f.Priority,
					Reason:     fmt.Sprintf("更新商品: %s（匹配键: %s，优先级更高）", item.GoodsName, key),
				})
			}
		}
	}

	if !hasGoods {
		return nil, logs
	}

	result := make([]model.GoodsItem, 0, len(keyOrder))
	for _, key := range keyOrder {
		result = append(result, seen[key].item)
	}
	return result, logs
}

// mergeGoodsFields 字段级合并：优先用新记录的值，新记录缺失的字段回落到旧值
func mergeGoodsFields(oldItem, newItem model.GoodsItem, key string) model.GoodsItem {
	merged := newItem

	if merged.HSCode == "" {
		merged.HSCode = oldItem.HSCode
	}
	if merged.GoodsName == "" {
		merged.GoodsName = oldItem.GoodsName
	}
	if merged.Quantity == nil {
		merged.Quantity = oldItem.Quantity
	}
	if merged.Unit == "" {
		merged.Unit = oldItem.Unit
	}
	if merged.UnitPrice == nil {
		merged.UnitPrice = oldItem.UnitPrice
	}
	if merged.TotalPrice == nil {
		merged.TotalPrice = oldItem.TotalPrice
	}
	if merged.Currency == "" {
		merged.Currency = oldItem.Currency
	}
	if merged.Origin == "" {
		merged.Origin = oldItem.Origin
	}
	if merged.NetWeight == nil {
		merged.NetWeight = oldItem.NetWeight
	}
	if merged.GrossWeight == nil {
		merged.GrossWeight = oldItem.GrossWeight
	}
	if merged.ItemCode == "" {
		merged.ItemCode = oldItem.ItemCode
	}
	merged.MatchKey = key

	return merged
}

// sortByPriority 按优先级升序稳定排序，排序不影响入参切片
func sortByPriority(files []fileWithPriority) []fileWithPriority {
	sorted := make([]fileWithPriority, len(files))
	copy(sorted, files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return sorted
}
