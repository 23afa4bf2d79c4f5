package delegation

import "github.com/wangpeng1017/0120guanwu/internal/model"

// CalculateFilePriority 给一个文件的提取结果打权威性评分，分值越高越可信。
// 核注清单是面向海关的权威单证，必须压倒一切；
// 提取到的实体越多说明数据越完整，作为次级信号；
// 原始行数只用来打破平局。
func CalculateFilePriority(data model.ExtractedData) float64 {
	score := 0.0

	if data.Declaration != nil {
		score += 100
	}
	if data.Enterprise != nil {
		score += 20
	}
	score += float64(len(data.Customers)) * 10
	score += float64(len(data.Goods)) * 5
	score += float64(data.TotalRows) * 0.1

	return score
}
