package storage

import (
	"errors"

	"github.com/julianstephens/gantt/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadyDeleted = errors.New("already deleted")
	ErrNotDeleted     = errors.New("not deleted")
	ErrDuplicateID    = errors.New("id already in use")
)

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Categories
	AddCategory(models.Category) (models.Category, error)
	GetCategory(id int) (models.Category, error)
	GetAllCategories() ([]models.Category, error)
	UpdateCategory(models.Category) error
	DeleteCategory(id int) error
	RestoreCategory(id int) error

	// Tasks. GetAllTasks returns live tasks in collection (position) order.
	AddTask(models.Task) (models.Task, error)
	GetTask(id int) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	GetAllTasksIncludingDeleted() ([]models.Task, error)
	UpdateTask(models.Task) error
	DeleteTask(id int) error
	RestoreTask(id int) error
	// SaveTaskOrder renumbers positions to follow ids, in one transaction.
	SaveTaskOrder(ids []int) error

	// Utils
	GetConfigPath() string
}
