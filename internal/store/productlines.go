package store

import (
	"database/sql"
	"fmt"

	"roadmap/internal/model"
)

// ListProductLines 获取所有产品线（按排序字段）
func (s *Store) ListProductLines() ([]*model.ProductLine, error) {
	rows, err := s.db.Query(`
		SELECT id, name, sort_order, created_at
		FROM product_lines
		ORDER BY sort_order, created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*model.ProductLine
	for rows.Next() {
		var pl model.ProductLine
		if err := rows.Scan(&pl.ID, &pl.Name, &pl.SortOrder, &pl.CreatedAt); err != nil {
			return nil, err
		}
		lines = append(lines, &pl)
	}
	return lines, rows.Err()
}

// GetProductLine 根据ID获取产品线
func (s *Store) GetProductLine(id string) (*model.ProductLine, error) {
	var pl model.ProductLine
	err := s.db.QueryRow(`
		SELECT id, name, sort_order, created_at FROM product_lines WHERE id = ?
	`, id).Scan(&pl.ID, &pl.Name, &pl.SortOrder, &pl.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("产品线不存在: %s", id)
	}
	if err != nil {
		return nil, err
	}
	return &pl, nil
}

// CreateProductLine 创建产品线
func (s *Store) CreateProductLine(pl *model.ProductLine) error {
	_, err := s.db.Exec(`
		INSERT INTO product_lines (id, name, sort_order, created_at) VALUES (?, ?, ?, ?)
	`, pl.ID, pl.Name, pl.SortOrder, pl.CreatedAt)
	return err
}

// UpdateProductLine 更新产品线名称
func (s *Store) UpdateProductLine(id, name string) error {
	res, err := s.db.Exec("UPDATE product_lines SET name = ? WHERE id = ?", name, id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

// DeleteProductLine 删除产品线
func (s *Store) DeleteProductLine(id string) error {
	res, err := s.db.Exec("DELETE FROM product_lines WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

// ReorderProductLines 按给定ID顺序重排产品线
// 整个重排在一个事务内完成，避免部分更新
func (s *Store) ReorderProductLines(orderedIDs []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("UPDATE product_lines SET sort_order = ? WHERE id = ?")
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i, id := range orderedIDs {
		if _, err := stmt.Exec(i, id); err != nil {
			return fmt.Errorf("failed to reorder product line %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// NextProductLineSortOrder 下一个排序序号（追加到末尾）
func (s *Store) NextProductLineSortOrder() (int, error) {
	var max sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(sort_order) FROM product_lines").Scan(&max); err != nil {
		return 0, err
	}
	if !max.Valid {
		return 0, nil
	}
	return int(max.Int64) + 1, nil
}
