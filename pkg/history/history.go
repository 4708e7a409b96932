// Package history keeps a local record of submitted task handles, so the
// CLI can list and re-fetch them later.
package history

import (
	"errors"
	"fmt"
	"time"

	"github.com/AlexanderGrooff/kobe-client/pkg/client"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const (
	KindAdhoc    = "adhoc"
	KindPlaybook = "playbook"
)

// ErrUnknownTask is returned for a task id that was never recorded.
var ErrUnknownTask = errors.New("task not in history")

type Submission struct {
	gorm.Model
	TaskID   string `gorm:"uniqueIndex"`
	Kind     string
	Endpoint string
	// Target is the host pattern for adhoc tasks and project/playbook otherwise.
	Target    string
	Module    string
	Tag       string
	Finished  bool
	Success   bool
	Message   string
	FetchedAt *time.Time
}

type DB struct {
	*gorm.DB
}

func Open(dataSourceName string) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open history %s: %w", dataSourceName, err)
	}

	if err := db.AutoMigrate(&Submission{}); err != nil {
		return nil, fmt.Errorf("failed to migrate history: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) RecordSubmission(s *Submission) error {
	if s.TaskID == "" {
		return fmt.Errorf("submission without task id")
	}
	return db.Create(s).Error
}

// RecordResult stores the latest fetched outcome of a recorded task.
func (db *DB) RecordResult(r *client.TaskResult) error {
	now := time.Now()
	res := db.Model(&Submission{}).Where("task_id = ?", r.ID).Updates(map[string]interface{}{
		"finished":   r.Finished,
		"success":    r.Success,
		"message":    r.Message,
		"fetched_at": &now,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownTask, r.ID)
	}
	return nil
}

func (db *DB) Get(taskID string) (*Submission, error) {
	var s Submission
	err := db.Where("task_id = ?", taskID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTask, taskID)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns the newest submissions first. A limit <= 0 returns all.
func (db *DB) List(limit int) ([]Submission, error) {
	var subs []Submission
	q := db.Order("created_at desc, id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&subs).Error
	return subs, err
}

// Pending returns recorded tasks whose last fetched result was not finished.
func (db *DB) Pending() ([]Submission, error) {
	var subs []Submission
	err := db.Where("finished = ?", false).Order("created_at asc, id asc").Find(&subs).Error
	return subs, err
}
