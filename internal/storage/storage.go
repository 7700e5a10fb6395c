// Package storage persists categories and tasks. SQLStore carries the
// queries shared by the sqlite and postgres backends; each backend owns
// connection setup and migrations.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/gantt/internal/models"
)

const (
	categoryColumns = "id, name, collapsed, position, deleted_at"
	taskColumns     = "id, category_id, name, start_date, end_date, incharge_user, percentage, position, deleted_at"
)

// SQLStore implements the record operations of Provider over database/sql.
// Queries are written with ? placeholders and passed through Rebind.
type SQLStore struct {
	DB     *sql.DB
	Rebind func(string) string
}

// DollarRebind rewrites ? placeholders as $1, $2, ... for postgres.
func DollarRebind(query string) string {
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQLStore) q(query string) string {
	if s.Rebind == nil {
		return query
	}
	return s.Rebind(query)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(row scanner) (models.Category, error) {
	var c models.Category
	var deletedAt sql.NullString
	if err := row.Scan(&c.ID, &c.Name, &c.Collapsed, &c.Position, &deletedAt); err != nil {
		return models.Category{}, err
	}
	if deletedAt.Valid {
		c.DeletedAt = &deletedAt.String
	}
	return c, nil
}

func scanTask(row scanner) (models.Task, error) {
	var t models.Task
	var start, end string
	var deletedAt sql.NullString
	err := row.Scan(&t.ID, &t.CategoryID, &t.Name, &start, &end, &t.InchargeUser, &t.Percentage, &t.Position, &deletedAt)
	if err != nil {
		return models.Task{}, err
	}
	if t.StartDate, err = models.ParseDate(start); err != nil {
		return models.Task{}, fmt.Errorf("task %d start_date: %w", t.ID, err)
	}
	if t.EndDate, err = models.ParseDate(end); err != nil {
		return models.Task{}, fmt.Errorf("task %d end_date: %w", t.ID, err)
	}
	if deletedAt.Valid {
		t.DeletedAt = &deletedAt.String
	}
	return t, nil
}

func nullable(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Categories

func (s *SQLStore) AddCategory(c models.Category) (models.Category, error) {
	tx, err := s.DB.Begin()
	if err != nil {
		return c, err
	}
	defer func() { _ = tx.Rollback() }()

	if c.ID, err = s.assignID(tx, "categories", c.ID); err != nil {
		return c, err
	}
	if err := tx.QueryRow("SELECT COALESCE(MAX(position), -1) + 1 FROM categories").Scan(&c.Position); err != nil {
		return c, fmt.Errorf("failed to compute category position: %w", err)
	}
	_, err = tx.Exec(s.q("INSERT INTO categories ("+categoryColumns+") VALUES (?, ?, ?, ?, ?)"),
		c.ID, c.Name, c.Collapsed, c.Position, nullable(c.DeletedAt))
	if err != nil {
		return c, fmt.Errorf("failed to insert category: %w", err)
	}
	return c, tx.Commit()
}

func (s *SQLStore) GetCategory(id int) (models.Category, error) {
	row := s.DB.QueryRow(s.q("SELECT "+categoryColumns+" FROM categories WHERE id = ? AND deleted_at IS NULL"), id)
	c, err := scanCategory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return c, fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return c, err
}

func (s *SQLStore) GetAllCategories() ([]models.Category, error) {
	rows, err := s.DB.Query("SELECT " + categoryColumns + " FROM categories WHERE deleted_at IS NULL ORDER BY position, id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *SQLStore) UpdateCategory(c models.Category) error {
	res, err := s.DB.Exec(s.q("UPDATE categories SET name = ?, collapsed = ?, position = ? WHERE id = ?"),
		c.Name, c.Collapsed, c.Position, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update category: %w", err)
	}
	return requireRow(res, "category", c.ID)
}

func (s *SQLStore) DeleteCategory(id int) error {
	return s.softDelete("categories", "category", id)
}

func (s *SQLStore) RestoreCategory(id int) error {
	return s.restore("categories", "category", id)
}

// Tasks

func (s *SQLStore) AddTask(t models.Task) (models.Task, error) {
	if !t.Valid() {
		return t, fmt.Errorf("task start %s is after end %s", models.FormatDate(t.StartDate), models.FormatDate(t.EndDate))
	}
	tx, err := s.DB.Begin()
	if err != nil {
		return t, err
	}
	defer func() { _ = tx.Rollback() }()

	if t.ID, err = s.assignID(tx, "tasks", t.ID); err != nil {
		return t, err
	}
	if err := tx.QueryRow("SELECT COALESCE(MAX(position), -1) + 1 FROM tasks").Scan(&t.Position); err != nil {
		return t, fmt.Errorf("failed to compute task position: %w", err)
	}
	_, err = tx.Exec(s.q("INSERT INTO tasks ("+taskColumns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)"),
		t.ID, t.CategoryID, t.Name, models.FormatDate(t.StartDate), models.FormatDate(t.EndDate),
		t.InchargeUser, t.Percentage, t.Position, nullable(t.DeletedAt))
	if err != nil {
		return t, fmt.Errorf("failed to insert task: %w", err)
	}
	return t, tx.Commit()
}

func (s *SQLStore) GetTask(id int) (models.Task, error) {
	row := s.DB.QueryRow(s.q("SELECT "+taskColumns+" FROM tasks WHERE id = ? AND deleted_at IS NULL"), id)
	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return t, fmt.Errorf("task %d: %w", id, ErrNotFound)
	}
	return t, err
}

func (s *SQLStore) GetAllTasks() ([]models.Task, error) {
	return s.queryTasks("SELECT " + taskColumns + " FROM tasks WHERE deleted_at IS NULL ORDER BY position, id")
}

func (s *SQLStore) GetAllTasksIncludingDeleted() ([]models.Task, error) {
	return s.queryTasks("SELECT " + taskColumns + " FROM tasks ORDER BY position, id")
}

func (s *SQLStore) queryTasks(query string) ([]models.Task, error) {
	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *SQLStore) UpdateTask(t models.Task) error {
	if !t.Valid() {
		return fmt.Errorf("task %d: start %s is after end %s", t.ID, models.FormatDate(t.StartDate), models.FormatDate(t.EndDate))
	}
	res, err := s.DB.Exec(s.q(`
		UPDATE tasks SET category_id = ?, name = ?, start_date = ?, end_date = ?,
		       incharge_user = ?, percentage = ?, position = ?
		WHERE id = ?`),
		t.CategoryID, t.Name, models.FormatDate(t.StartDate), models.FormatDate(t.EndDate),
		t.InchargeUser, t.Percentage, t.Position, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return requireRow(res, "task", t.ID)
}

func (s *SQLStore) DeleteTask(id int) error {
	return s.softDelete("tasks", "task", id)
}

func (s *SQLStore) RestoreTask(id int) error {
	return s.restore("tasks", "task", id)
}

func (s *SQLStore) SaveTaskOrder(ids []int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.Prepare(s.q("UPDATE tasks SET position = ? WHERE id = ?"))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for pos, id := range ids {
		if _, err := stmt.Exec(pos, id); err != nil {
			return fmt.Errorf("failed to move task %d: %w", id, err)
		}
	}
	return tx.Commit()
}

// helpers

// assignID returns id when it is free, or the next unused id when id is 0.
func (s *SQLStore) assignID(tx *sql.Tx, table string, id int) (int, error) {
	if id == 0 {
		if err := tx.QueryRow("SELECT COALESCE(MAX(id), 0) + 1 FROM " + table).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to allocate %s id: %w", table, err)
		}
		return id, nil
	}
	var count int
	if err := tx.QueryRow(s.q("SELECT count(*) FROM "+table+" WHERE id = ?"), id).Scan(&count); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, fmt.Errorf("%s id %d: %w", table, id, ErrDuplicateID)
	}
	return id, nil
}

func (s *SQLStore) softDelete(table, kind string, id int) error {
	var deletedAt sql.NullString
	err := s.DB.QueryRow(s.q("SELECT deleted_at FROM "+table+" WHERE id = ?"), id).Scan(&deletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
		}
		return fmt.Errorf("failed to check %s existence: %w", kind, err)
	}
	if deletedAt.Valid {
		return fmt.Errorf("%s %d: %w", kind, id, ErrAlreadyDeleted)
	}
	_, err = s.DB.Exec(s.q("UPDATE "+table+" SET deleted_at = ? WHERE id = ?"), now(), id)
	return err
}

func (s *SQLStore) restore(table, kind string, id int) error {
	var deletedAt sql.NullString
	err := s.DB.QueryRow(s.q("SELECT deleted_at FROM "+table+" WHERE id = ?"), id).Scan(&deletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
		}
		return fmt.Errorf("failed to check %s existence: %w", kind, err)
	}
	if !deletedAt.Valid {
		return fmt.Errorf("cannot restore %s %d: %w", kind, id, ErrNotDeleted)
	}
	_, err = s.DB.Exec(s.q("UPDATE "+table+" SET deleted_at = NULL WHERE id = ?"), id)
	return err
}

func requireRow(res sql.Result, kind string, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return nil
}
