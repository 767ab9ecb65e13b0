package parser

import (
	"encoding/csv"
	"fmt"
	"os"
)

// ReadCSV 读取带表头的 CSV 文件，返回按列名索引的数据行
// 表头行的 UTF-8 BOM 会被去除（Excel 导出的 CSV 常带 BOM）
func ReadCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // 允许行尾缺列

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv has no header row")
	}

	return rowsToMaps(records), nil
}

// rowsToMaps 把表头行 + 数据行转成按列名索引的映射，保持数据行顺序
func rowsToMaps(records [][]string) []map[string]string {
	headers := records[0]
	for i := range headers {
		headers[i] = NormalizeHeader(headers[i])
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows
}
