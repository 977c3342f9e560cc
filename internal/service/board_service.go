package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/calendar"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/kanban"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/logger"
	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/repository"
)

// BoardService serves the derived views: both boards and the contribution
// calendar. Nothing here is persisted.
type BoardService struct {
	content ContentLister
	tasks   repository.TaskRepository
}

// NewBoardService creates a new BoardService.
func NewBoardService(content ContentLister, tasks repository.TaskRepository) *BoardService {
	return &BoardService{content: content, tasks: tasks}
}

// ContentBoard projects every content item onto the content board. The
// returned version is the content cache version the board was built from.
func (s *BoardService) ContentBoard(ctx context.Context) (kanban.Board, uint64, error) {
	list, err := s.content.List(ctx, repository.ContentFilter{})
	if err != nil {
		return nil, 0, err
	}
	return kanban.BuildBoard(list.Items), list.Version, nil
}

// TaskBoard groups every task by status. Tasks holding an unknown status are
// logged and left off the board.
func (s *BoardService) TaskBoard(ctx context.Context) (kanban.TaskBoard, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	board, invalid := kanban.BuildTaskBoard(tasks)
	for _, t := range invalid {
		logger.Warn("Task has an unknown status",
			slog.String("task_id", t.ID),
			slog.String("status", string(t.Status)))
	}
	return board, nil
}

// Calendar aggregates the publication events of one year.
func (s *BoardService) Calendar(ctx context.Context, year int) (*calendar.Calendar, error) {
	list, err := s.content.List(ctx, repository.ContentFilter{})
	if err != nil {
		return nil, err
	}
	return calendar.Aggregate(list.Items, year), nil
}
