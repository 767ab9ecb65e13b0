package store

import (
	"database/sql"
	"fmt"

	"flightimport/internal/model"
)

// TruncateFlightData 清空航班与订单数据
// 先清 Booking 再清 Flight，保证外键约束下的删除顺序
func TruncateFlightData(tx *sql.Tx) error {
	if _, err := tx.Exec("DELETE FROM Booking"); err != nil {
		return fmt.Errorf("failed to truncate Booking: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM Flight"); err != nil {
		return fmt.Errorf("failed to truncate Flight: %w", err)
	}
	return nil
}

// InsertFlights 批量插入航班，返回与输入同序的 flight_id 列表
func InsertFlights(tx *sql.Tx, flights []*model.Flight) ([]int64, error) {
	stmt, err := tx.Prepare(`
		INSERT INTO Flight (
			flight_number, model, origin, destination,
			departure_time, arrival_time,
			total_seats, remaining_seats, price, is_deleted
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(flights))
	for _, f := range flights {
		res, err := stmt.Exec(
			f.FlightNumber, f.Model, f.Origin, f.Destination,
			f.DepartureTime.Format(timeLayout), f.ArrivalTime.Format(timeLayout),
			f.TotalSeats, f.RemainingSeats, f.Price, f.IsDeleted,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert flight %s: %w", f.FlightNumber, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get flight id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// CountFlights 统计航班数（不含软删除行）
func (s *Store) CountFlights() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM Flight WHERE is_deleted = 0").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count flights: %w", err)
	}
	return count, nil
}
