package parser

import (
	"strconv"
	"strings"
	"time"

	"flightimport/internal/model"
)

// timeLayouts 起降时刻支持的格式，按顺序尝试
var timeLayouts = []string{"15:04:05", "15:04"}

// ParseTimeOfDay 解析一天内的时刻，支持 "HH:MM:SS" 与 "HH:MM"
// 空串或其他格式返回 false，表示该行应被跳过而不是报错
func ParseTimeOfDay(s string) (model.TimeOfDay, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.TimeOfDay{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return model.TimeOfDay{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}, true
		}
	}
	return model.TimeOfDay{}, false
}

// ParseDistanceKM 解析里程（公里），移除千分位
// 空串或非数字返回 0，表示里程未知
func ParseDistanceKM(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "") // 移除千分位
	s = strings.ReplaceAll(s, "，", "")
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// NormalizeHeader 规范化表头，去除 UTF-8 BOM 与首尾空白
func NormalizeHeader(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.TrimSpace(name)
}
