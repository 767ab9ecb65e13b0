package model

import "fmt"

// TimeOfDay 一天之内的时刻，不含日期
type TimeOfDay struct {
	Hour   int
	Minute int
	Second int
}

// String 格式化为 HH:MM:SS
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// WeekdayPattern 周班期集合，下标 0=周一 .. 6=周日
type WeekdayPattern [7]bool

// IsEmpty 判断是否没有任何班期
func (p WeekdayPattern) IsEmpty() bool {
	for _, active := range p {
		if active {
			return false
		}
	}
	return true
}

// Contains 判断指定星期（0=周一）是否有班期
func (p WeekdayPattern) Contains(weekday int) bool {
	if weekday < 0 || weekday >= len(p) {
		return false
	}
	return p[weekday]
}

// ScheduleRow 解析后的一行周班期数据
// 起降时刻是一天内的时刻，展开到具体日期由 schedule 包完成
type ScheduleRow struct {
	FlightNumber string
	Model        string
	Origin       string
	Destination  string
	Departure    TimeOfDay
	Arrival      TimeOfDay
	DistanceKM   float64
	Weekdays     WeekdayPattern
}
