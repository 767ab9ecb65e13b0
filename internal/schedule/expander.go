package schedule

import (
	"time"

	"flightimport/internal/model"
)

// Occurrence 周班期在某个具体日期的一次起降
type Occurrence struct {
	Date      time.Time // 起飞当天（零点）
	Departure time.Time
	Arrival   time.Time
}

// WeekdayIndex 把 time.Weekday 转成班期下标，0=周一 .. 6=周日
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Expand 在 [start, end] 闭区间内展开周班期，按日期顺序返回
// 降落时刻不晚于起飞时刻时顺延一天，对应跨零点的红眼航班；
// 因此每次起降都满足降落严格晚于起飞。
// 调用方保证 start <= end（配置层在任何展开开始前校验）。
func Expand(pattern model.WeekdayPattern, departure, arrival model.TimeOfDay, start, end time.Time) []Occurrence {
	if pattern.IsEmpty() {
		return nil
	}

	var occurrences []Occurrence
	for date := start; !date.After(end); date = date.AddDate(0, 0, 1) {
		if !pattern.Contains(WeekdayIndex(date)) {
			continue
		}

		departureAt := combine(date, departure)
		arrivalAt := combine(date, arrival)
		if !arrivalAt.After(departureAt) {
			arrivalAt = arrivalAt.AddDate(0, 0, 1)
		}

		occurrences = append(occurrences, Occurrence{
			Date:      date,
			Departure: departureAt,
			Arrival:   arrivalAt,
		})
	}
	return occurrences
}

// combine 把日期与一天内的时刻合成完整时间
func combine(date time.Time, tod model.TimeOfDay) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), tod.Hour, tod.Minute, tod.Second, 0, date.Location())
}
