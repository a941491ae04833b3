package store

import (
	"database/sql"
	"fmt"

	"roadmap/internal/model"
)

// ListOwners 获取所有人员（按创建时间）
func (s *Store) ListOwners() ([]*model.Owner, error) {
	rows, err := s.db.Query(`
		SELECT id, name, color, visible, created_at FROM owners ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var owners []*model.Owner
	for rows.Next() {
		o, err := scanOwner(rows.Scan)
		if err != nil {
			return nil, err
		}
		owners = append(owners, o)
	}
	return owners, rows.Err()
}

func scanOwner(scan func(dest ...any) error) (*model.Owner, error) {
	var o model.Owner
	var visible int
	if err := scan(&o.ID, &o.Name, &o.Color, &visible, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.Visible = visible != 0
	return &o, nil
}

// GetOwner 根据ID获取人员
func (s *Store) GetOwner(id string) (*model.Owner, error) {
	o, err := scanOwner(s.db.QueryRow(`
		SELECT id, name, color, visible, created_at FROM owners WHERE id = ?
	`, id).Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("人员不存在: %s", id)
	}
	return o, err
}

// CreateOwner 创建人员
func (s *Store) CreateOwner(o *model.Owner) error {
	_, err := s.db.Exec(`
		INSERT INTO owners (id, name, color, visible, created_at) VALUES (?, ?, ?, ?, ?)
	`, o.ID, o.Name, o.Color, boolToInt(o.Visible), o.CreatedAt)
	return err
}

// UpdateOwner 更新人员
func (s *Store) UpdateOwner(o *model.Owner) error {
	res, err := s.db.Exec(`
		UPDATE owners SET name = ?, color = ?, visible = ? WHERE id = ?
	`, o.Name, o.Color, boolToInt(o.Visible), o.ID)
	if err != nil {
		return err
	}
	return requireAffected(res, o.ID)
}

// DeleteOwner 删除人员
func (s *Store) DeleteOwner(id string) error {
	res, err := s.db.Exec("DELETE FROM owners WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

// CountOwners 统计人员总数（用于分配颜色池序号）
func (s *Store) CountOwners() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM owners").Scan(&count)
	return count, err
}
