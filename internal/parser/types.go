package parser

// 班期表的列名，与数据源表头保持一致
const (
	ColFlightNumber = "航班班次"
	ColModel        = "机型"
	ColOrigin       = "出发城市"
	ColDestination  = "到达城市"
	ColDeparture    = "起飞时间"
	ColArrival      = "降落时间"
	ColDistance     = "里程（公里）"
)

// DayColumns 七个班期列，下标 0=周一 .. 6=周日
var DayColumns = [7]string{
	"周一班期",
	"周二班期",
	"周三班期",
	"周四班期",
	"周五班期",
	"周六班期",
	"周日班期",
}

// ActiveMarker 班期列中表示当天有班的标记子串
const ActiveMarker = "有班期"

// RejectReason 行被拒绝的原因
// 拒绝不是错误：占位行、信息不全的行按预期被静默跳过
type RejectReason string

const (
	RejectNone         RejectReason = ""              // 行被接受
	RejectMissingField RejectReason = "missing_field" // 班次/城市缺失
	RejectBadTime      RejectReason = "bad_time"      // 起降时刻无法解析
	RejectEmptyPattern RejectReason = "empty_pattern" // 没有任何班期
)
