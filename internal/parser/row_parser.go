package parser

import (
	"strings"

	"flightimport/internal/model"
)

// ParseRow 解析一行周班期数据
// 返回 (行, RejectNone) 或 (nil, 拒绝原因)；调用方据此统计跳过的行数
func ParseRow(raw map[string]string) (*model.ScheduleRow, RejectReason) {
	pattern := collectWeekdays(raw)
	if pattern.IsEmpty() {
		return nil, RejectEmptyPattern
	}

	flightNumber := strings.TrimSpace(raw[ColFlightNumber])
	origin := strings.TrimSpace(raw[ColOrigin])
	destination := strings.TrimSpace(raw[ColDestination])
	if flightNumber == "" || origin == "" || destination == "" {
		return nil, RejectMissingField
	}

	departure, ok := ParseTimeOfDay(raw[ColDeparture])
	if !ok {
		return nil, RejectBadTime
	}
	arrival, ok := ParseTimeOfDay(raw[ColArrival])
	if !ok {
		return nil, RejectBadTime
	}

	planeModel := strings.TrimSpace(raw[ColModel])
	if planeModel == "" {
		planeModel = "UNKNOWN"
	}

	return &model.ScheduleRow{
		FlightNumber: flightNumber,
		Model:        planeModel,
		Origin:       origin,
		Destination:  destination,
		Departure:    departure,
		Arrival:      arrival,
		DistanceKM:   ParseDistanceKM(raw[ColDistance]),
		Weekdays:     pattern,
	}, RejectNone
}

// collectWeekdays 从七个班期列收集当周的班期集合
func collectWeekdays(raw map[string]string) model.WeekdayPattern {
	var pattern model.WeekdayPattern
	for weekday, column := range DayColumns {
		if strings.Contains(raw[column], ActiveMarker) {
			pattern[weekday] = true
		}
	}
	return pattern
}
