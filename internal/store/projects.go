package store

import (
	"database/sql"
	"fmt"
	"strings"

	"roadmap/internal/model"
)

// ProjectQueryOptions 项目查询选项
type ProjectQueryOptions struct {
	ProductLineID *string
	OwnerID       *string
	Status        *string
	// 与 [StartDate, EndDate] 有交集的项目（闭区间）
	StartDate *string
	EndDate   *string
}

func scanProject(scan func(dest ...any) error) (*model.Project, error) {
	var p model.Project
	var isPending int
	err := scan(
		&p.ID, &p.Name, &p.ProductLineID, &p.OwnerID,
		&p.StartDate, &p.EndDate, &p.Status, &isPending, &p.Remarks,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.IsPending = isPending != 0
	return &p, nil
}

const projectColumns = `id, name, product_line_id, owner_id, start_date, end_date, status, is_pending, remarks, created_at, updated_at`

// ListProjects 查询项目列表
func (s *Store) ListProjects(opts ProjectQueryOptions) ([]*model.Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects", projectColumns)
	var conds []string
	var args []any

	if opts.ProductLineID != nil {
		conds = append(conds, "product_line_id = ?")
		args = append(args, *opts.ProductLineID)
	}
	if opts.OwnerID != nil {
		conds = append(conds, "owner_id = ?")
		args = append(args, *opts.OwnerID)
	}
	if opts.Status != nil {
		conds = append(conds, "status = ?")
		args = append(args, *opts.Status)
	}
	if opts.StartDate != nil && opts.EndDate != nil {
		// 闭区间相交：start <= 查询终点 且 查询起点 <= end
		conds = append(conds, "start_date <= ? AND ? <= end_date")
		args = append(args, *opts.EndDate, *opts.StartDate)
	}

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY start_date, created_at"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*model.Project
	for rows.Next() {
		p, err := scanProject(rows.Scan)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// GetProject 根据ID获取项目
func (s *Store) GetProject(id string) (*model.Project, error) {
	query := fmt.Sprintf("SELECT %s FROM projects WHERE id = ?", projectColumns)
	p, err := scanProject(s.db.QueryRow(query, id).Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("项目不存在: %s", id)
	}
	return p, err
}

// CreateProject 创建项目
func (s *Store) CreateProject(p *model.Project) error {
	_, err := s.db.Exec(`
		INSERT INTO projects (id, name, product_line_id, owner_id, start_date, end_date, status, is_pending, remarks, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, p.ID, p.Name, p.ProductLineID, p.OwnerID, p.StartDate, p.EndDate, p.Status, boolToInt(p.IsPending), p.Remarks, p.CreatedAt, p.UpdatedAt)
	return err
}

// UpdateProject 更新项目
func (s *Store) UpdateProject(p *model.Project) error {
	res, err := s.db.Exec(`
		UPDATE projects
		SET name = ?, product_line_id = ?, owner_id = ?, start_date = ?, end_date = ?, status = ?, is_pending = ?, remarks = ?, updated_at = ?
		WHERE id = ?
	`, p.Name, p.ProductLineID, p.OwnerID, p.StartDate, p.EndDate, p.Status, boolToInt(p.IsPending), p.Remarks, p.UpdatedAt, p.ID)
	if err != nil {
		return err
	}
	return requireAffected(res, p.ID)
}

// DeleteProject 删除项目
func (s *Store) DeleteProject(id string) error {
	res, err := s.db.Exec("DELETE FROM projects WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireAffected(res, id)
}

// CountProjects 统计项目总数
func (s *Store) CountProjects() (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM projects").Scan(&count)
	return count, err
}

// CountProjectsByOwner 统计某负责人名下的项目数
func (s *Store) CountProjectsByOwner(ownerID string) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM projects WHERE owner_id = ?", ownerID).Scan(&count)
	return count, err
}

// CountProjectsByProductLine 统计某产品线名下的项目数
func (s *Store) CountProjectsByProductLine(productLineID string) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM projects WHERE product_line_id = ?", productLineID).Scan(&count)
	return count, err
}

// ProjectDateRange 所有项目的最早开始日和最晚结束日
// 无项目时 ok 为 false
func (s *Store) ProjectDateRange() (minStart, maxEnd string, ok bool, err error) {
	var minNull, maxNull sql.NullString
	err = s.db.QueryRow("SELECT MIN(start_date), MAX(end_date) FROM projects").Scan(&minNull, &maxNull)
	if err != nil {
		return "", "", false, err
	}
	if !minNull.Valid || !maxNull.Valid {
		return "", "", false, nil
	}
	return minNull.String, maxNull.String, true, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func requireAffected(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("记录不存在: %s", id)
	}
	return nil
}
