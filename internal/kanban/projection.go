// Package kanban derives board columns from content and tasks.
//
// The content board is a read-only projection of the legacy published flags
// and is recomputed on every read. The task board groups the persisted task
// entities by their own status. The two boards are independent.
package kanban

import (
	"fmt"

	"github.com/ColinBurgess/MultiLangContentManager-sub000/internal/domain"
)

// Column is a content board column.
type Column string

const (
	ColumnDraft      Column = "draft"
	ColumnCastellano Column = "castellano"
	ColumnIngles     Column = "ingles"
	ColumnFinalizado Column = "finalizado"
)

// Columns lists the content board columns in display order.
var Columns = []Column{ColumnDraft, ColumnCastellano, ColumnIngles, ColumnFinalizado}

// ParseColumn validates a column name.
func ParseColumn(raw string) (Column, error) {
	for _, c := range Columns {
		if string(c) == raw {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: unknown column %q", domain.ErrValidationFailed, raw)
}

// Project maps the pair of published flags to a column. Total over the four
// combinations.
func Project(publishedEs, publishedEn bool) Column {
	switch {
	case publishedEs && publishedEn:
		return ColumnFinalizado
	case publishedEs:
		return ColumnCastellano
	case publishedEn:
		return ColumnIngles
	default:
		return ColumnDraft
	}
}

// ProjectItem maps a content item to its column using the flags as seen by
// legacy consumers, i.e. derived from the effective status.
func ProjectItem(item *domain.ContentItem) Column {
	return Project(
		domain.DeriveFlag(item.EffectiveStatus(domain.LangEs)),
		domain.DeriveFlag(item.EffectiveStatus(domain.LangEn)),
	)
}

// Flags is the reverse mapping used when a card is dropped on a column.
// Each column has exactly one preimage.
func Flags(c Column) (publishedEs, publishedEn bool) {
	switch c {
	case ColumnCastellano:
		return true, false
	case ColumnIngles:
		return false, true
	case ColumnFinalizado:
		return true, true
	default:
		return false, false
	}
}

// Card is a content item as shown on the board.
type Card struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Tags     []string      `json:"tags"`
	StatusEs domain.Status `json:"statusEs"`
	StatusEn domain.Status `json:"statusEn"`
	Column   Column        `json:"column"`
}

// Board is the content board, one entry per column, every column present.
type Board map[Column][]Card

// BuildBoard projects items onto the content board.
func BuildBoard(items []domain.ContentItem) Board {
	board := make(Board, len(Columns))
	for _, c := range Columns {
		board[c] = []Card{}
	}
	for i := range items {
		item := &items[i]
		col := ProjectItem(item)
		board[col] = append(board[col], Card{
			ID:       item.ID,
			Title:    item.Title,
			Tags:     item.Tags,
			StatusEs: item.EffectiveStatus(domain.LangEs),
			StatusEn: item.EffectiveStatus(domain.LangEn),
			Column:   col,
		})
	}
	return board
}

// TaskBoard groups tasks by status, every status present.
type TaskBoard map[domain.TaskStatus][]domain.Task

// BuildTaskBoard groups tasks by status. Tasks with an unknown status are
// returned separately so callers can surface them.
func BuildTaskBoard(tasks []domain.Task) (TaskBoard, []domain.Task) {
	board := make(TaskBoard, len(domain.ValidTaskStatuses))
	for _, s := range domain.ValidTaskStatuses {
		board[s] = []domain.Task{}
	}
	var invalid []domain.Task
	for _, t := range tasks {
		if _, ok := board[t.Status]; !ok {
			invalid = append(invalid, t)
			continue
		}
		board[t.Status] = append(board[t.Status], t)
	}
	return board, invalid
}
