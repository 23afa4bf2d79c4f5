package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/wangpeng1017/0120guanwu/internal/delegation"
)

// Reader 工作簿读取器：把上传的 Excel 物化成管线需要的行数据，
// 管线自身不接触工作簿句柄。
type Reader struct{}

// NewReader 创建读取器
func NewReader() *Reader {
	return &Reader{}
}

// ReadWorkbook 读取工作簿内全部 sheet 的行数据
func (r *Reader) ReadWorkbook(src io.Reader) ([]delegation.SheetData, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("打开工作簿失败: %w", err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	sheets := make([]delegation.SheetData, 0, len(sheetList))

	for _, sheetName := range sheetList {
		rawRows, err := f.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("读取 sheet %s 失败: %w", sheetName, err)
		}

		rows := make([]delegation.Row, len(rawRows))
		for i, raw := range rawRows {
			rows[i] = delegation.RowFromStrings(raw)
		}

		sheets = append(sheets, delegation.SheetData{
			Name: sheetName,
			Rows: rows,
		})
	}

	return sheets, nil
}
