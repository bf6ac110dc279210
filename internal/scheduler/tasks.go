package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TaskCategorySnapshot recomputes the per-category lead counts and persists
// them as the daily snapshot.
const TaskCategorySnapshot = "leads.category_snapshot"

// CategorySnapshotPayload optionally pins the snapshot date. An empty Date
// means "today" in the business timezone, which is what the periodic
// schedule uses; a pinned date supports manual backfills.
type CategorySnapshotPayload struct {
	Date string `json:"date,omitempty"`
}

func NewCategorySnapshotTask(payload CategorySnapshotPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCategorySnapshot, data), nil
}

func ParseCategorySnapshotPayload(task *asynq.Task) (CategorySnapshotPayload, error) {
	var payload CategorySnapshotPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return CategorySnapshotPayload{}, err
	}
	return payload, nil
}
