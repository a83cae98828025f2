package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/channeling-app/reportpipe/ent"
	"github.com/channeling-app/reportpipe/ent/task"
	"github.com/channeling-app/reportpipe/pkg/database"
	"github.com/channeling-app/reportpipe/pkg/models"
)

// TaskService manages Task rows: the three-axis step status record the
// client polls while a report is being generated.
type TaskService struct {
	db *database.Client
}

// NewTaskService creates a task service.
func NewTaskService(db *database.Client) *TaskService {
	return &TaskService{db: db}
}

// Create inserts a task for a report with all axes pending.
func (s *TaskService) Create(ctx context.Context, reportID int) (*ent.Task, error) {
	t, err := s.db.Task.Create().
		SetReportID(reportID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create task for report %d: %w", reportID, err)
	}
	return t, nil
}

// Get fetches one task by ID.
func (s *TaskService) Get(ctx context.Context, id int) (*ent.Task, error) {
	t, err := s.db.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return t, nil
}

// MarkStep transitions one axis of a task to completed or failed. Each
// axis is written only by its own step handler, so no read-modify-write
// race exists between axes.
func (s *TaskService) MarkStep(ctx context.Context, taskID int, step models.Step, succeeded bool) error {
	update := s.db.Task.UpdateOneID(taskID)

	switch step {
	case models.StepOverview:
		if succeeded {
			update.SetOverviewStatus(task.OverviewStatusCompleted)
		} else {
			update.SetOverviewStatus(task.OverviewStatusFailed)
		}
	case models.StepAnalysis:
		if succeeded {
			update.SetAnalysisStatus(task.AnalysisStatusCompleted)
		} else {
			update.SetAnalysisStatus(task.AnalysisStatusFailed)
		}
	case models.StepIdea:
		if succeeded {
			update.SetIdeaStatus(task.IdeaStatusCompleted)
		} else {
			update.SetIdeaStatus(task.IdeaStatusFailed)
		}
	default:
		return fmt.Errorf("unknown step %q", step)
	}

	if _, err := update.Save(ctx); err != nil {
		return fmt.Errorf("failed to mark %s of task %d: %w", step, taskID, err)
	}

	slog.Info("Task axis updated", "task_id", taskID, "step", step, "succeeded", succeeded)
	return nil
}

// MarkIdeaCompleted pre-completes the idea axis. The v2 flow uses this
// when idea generation is disabled so clients see the task finish.
func (s *TaskService) MarkIdeaCompleted(ctx context.Context, taskID int) error {
	_, err := s.db.Task.UpdateOneID(taskID).
		SetIdeaStatus(task.IdeaStatusCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to pre-complete idea axis of task %d: %w", taskID, err)
	}
	return nil
}
