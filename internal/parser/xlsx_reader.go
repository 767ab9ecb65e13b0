package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX 读取 Excel 文件的第一个工作表，返回按列名索引的数据行
// 与 ReadCSV 输出相同的结构，调用方按扩展名选择读取器
func ReadXLSX(path string) ([]map[string]string, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open xlsx: %w", err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("xlsx has no sheets")
	}

	records, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheets[0])
	}

	return rowsToMaps(records), nil
}
