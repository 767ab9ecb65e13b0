package model

import "time"

// BookingStatus 订单状态
type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED" // 已确认
	BookingCancelled BookingStatus = "CANCELLED" // 已取消
	BookingPending   BookingStatus = "PENDING"   // 待支付
)

// Flight 航班数据模型，对应 Flight 表的一行
// 每个实例是周班期在日期窗口内的一次具体起降
type Flight struct {
	FlightID       int64     `json:"flightId"`
	FlightNumber   string    `json:"flightNumber"`
	Model          string    `json:"model"`
	Origin         string    `json:"origin"`
	Destination    string    `json:"destination"`
	DepartureTime  time.Time `json:"departureTime"`
	ArrivalTime    time.Time `json:"arrivalTime"`
	TotalSeats     int       `json:"totalSeats"`
	RemainingSeats int       `json:"remainingSeats"`
	Price          int       `json:"price"`
	IsDeleted      int       `json:"isDeleted"` // 软删除标记，导入时恒为 0
}

// User 用户数据模型，对应 User 表的一行
type User struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	IsAdmin   int       `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

// Booking 订单数据模型，对应 Booking 表的一行
type Booking struct {
	BookingID   int64         `json:"bookingId"`
	UserID      int64         `json:"userId"`
	FlightID    int64         `json:"flightId"`
	BookingTime time.Time     `json:"bookingTime"`
	Status      BookingStatus `json:"status"`
}
