package store

import "fmt"

// CreateImportLog 创建导入日志，返回 import_log id
func (s *Store) CreateImportLog(runID, sourceFile, windowStart, windowEnd string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO import_logs (run_id, source_file, window_start, window_end, status)
		VALUES (?, ?, ?, ?, 'processing')
	`, runID, sourceFile, windowStart, windowEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to create import log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get import log id: %w", err)
	}
	return id, nil
}

// FinishImportLog 完成导入日志更新
func (s *Store) FinishImportLog(id int64, flightCount, userCount, bookingCount int, status, errorMessage string) error {
	_, err := s.db.Exec(`
		UPDATE import_logs SET
			flight_count = ?,
			user_count = ?,
			booking_count = ?,
			status = ?,
			error_message = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, flightCount, userCount, bookingCount, status, errorMessage, id)
	if err != nil {
		return fmt.Errorf("failed to update import log: %w", err)
	}
	return nil
}
