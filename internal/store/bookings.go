package store

import (
	"database/sql"
	"fmt"

	"flightimport/internal/model"
)

// InsertBookings 批量插入演示订单
func InsertBookings(tx *sql.Tx, bookings []*model.Booking) error {
	stmt, err := tx.Prepare(`
		INSERT INTO Booking (user_id, flight_id, booking_time, status) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, b := range bookings {
		_, err := stmt.Exec(b.UserID, b.FlightID, b.BookingTime.Format(timeLayout), string(b.Status))
		if err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}
	}

	return nil
}

// CountBookings 统计订单数
func (s *Store) CountBookings() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM Booking").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}
