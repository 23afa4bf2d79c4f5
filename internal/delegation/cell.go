package delegation

import (
	"strconv"
	"strings"
)

// CellKind 单元格值类型
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

// Cell 工作表单元格。上游表格读取器把每个格子物化成
// 字符串/数值/空 三种取值之一，管线内部不再接触工作簿。
type Cell struct {
	Kind CellKind
	Text string
	Num  float64
}

// TextCell 文本单元格
func TextCell(s string) Cell {
	if s == "" {
		return Cell{}
	}
	return Cell{Kind: CellText, Text: s}
}

// NumberCell 数值单元格
func NumberCell(n float64) Cell {
	return Cell{Kind: CellNumber, Num: n}
}

// String 单元格的字符串表示；空单元格返回 ""
func (c Cell) String() string {
	switch c.Kind {
	case CellText:
		return c.Text
	case CellNumber:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	}
	return ""
}

// IsEmpty 是否为空单元格
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty || (c.Kind == CellText && c.Text == "")
}

// Float 解析数值。文本单元格按十进制宽松解析，
// 解析失败视为“未知”而不是零。
func (c Cell) Float() (float64, bool) {
	switch c.Kind {
	case CellNumber:
		return c.Num, true
	case CellText:
		n, err := strconv.ParseFloat(strings.TrimSpace(c.Text), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// Row 一行单元格，列数不定长
type Row []Cell

// RowFromStrings 把一行字符串转成单元格行（空串视为空单元格）
func RowFromStrings(cells []string) Row {
	row := make(Row, len(cells))
	for i, s := range cells {
		row[i] = TextCell(s)
	}
	return row
}

// hasContent 行内是否存在非空单元格
func (r Row) hasContent() bool {
	for _, c := range r {
		if !c.IsEmpty() {
			return true
		}
	}
	return false
}

// joinLower 把整行拼成一个小写字符串，用于关键词扫描
func (r Row) joinLower(sep string) string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = c.String()
	}
	return strings.ToLower(strings.Join(parts, sep))
}
