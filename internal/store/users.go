package store

import (
	"database/sql"
	"fmt"

	"flightimport/internal/model"
)

// ListUsers 列出全部用户 id 与用户名集合
// 演示用户补齐按已有用户名避让，保证只做增量
func ListUsers(tx *sql.Tx) ([]int64, map[string]bool, error) {
	rows, err := tx.Query("SELECT user_id, username FROM User")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var ids []int64
	usernames := make(map[string]bool)
	for rows.Next() {
		var id int64
		var username string
		if err := rows.Scan(&id, &username); err != nil {
			return nil, nil, fmt.Errorf("failed to scan user: %w", err)
		}
		ids = append(ids, id)
		usernames[username] = true
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return ids, usernames, nil
}

// InsertUsers 批量插入用户，返回与输入同序的 user_id 列表
func InsertUsers(tx *sql.Tx, users []*model.User) ([]int64, error) {
	stmt, err := tx.Prepare(`
		INSERT INTO User (username, password, is_admin) VALUES (?, ?, ?)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		res, err := stmt.Exec(u.Username, u.Password, u.IsAdmin)
		if err != nil {
			return nil, fmt.Errorf("failed to insert user %s: %w", u.Username, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get user id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// CountUsers 统计用户数
func (s *Store) CountUsers() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM User").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
