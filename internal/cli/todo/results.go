package todo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/thenoetrevino/hecho/internal/cli/styles"
	"github.com/thenoetrevino/hecho/internal/models"
)

const timeLayout = "2006-01-02 15:04"

// itemResult is a single to-do item plus the message shown in human mode
type itemResult struct {
	*models.TodoItem
	message string
}

func (r *itemResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.TodoItem)
}

func (r *itemResult) PrintHuman(w io.Writer) error {
	if r.message != "" {
		if _, err := fmt.Fprintln(w, styles.SuccessStyle.Render(r.message)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, renderItem(r.TodoItem))
	return err
}

func renderItem(item *models.TodoItem) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d %s", item.ID, item.Title)))
	b.WriteString("\n\n")
	b.WriteString(styles.LabelStyle.Render("Status:  "))
	b.WriteString(styles.Status(item.Completed))
	b.WriteString("\n")
	b.WriteString(styles.LabelStyle.Render("Created: "))
	b.WriteString(styles.ValueStyle.Render(item.CreatedAt.Local().Format(timeLayout)))
	b.WriteString("\n")
	b.WriteString(styles.LabelStyle.Render("Updated: "))
	b.WriteString(styles.ValueStyle.Render(item.UpdatedAt.Local().Format(timeLayout)))
	return styles.RenderCard(b.String())
}

// listResult is the output of 'todo list'
type listResult struct {
	Items []*models.TodoItem
}

func (r *listResult) GetIDs() []int {
	ids := make([]int, len(r.Items))
	for i, item := range r.Items {
		ids[i] = item.ID
	}
	return ids
}

func (r *listResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Items)
}

func (r *listResult) PrintHuman(w io.Writer) error {
	if len(r.Items) == 0 {
		_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render("No to-do items found"))
		return err
	}

	if _, err := fmt.Fprintln(w, styles.TitleStyle.Render(fmt.Sprintf("To-do items (%d)", len(r.Items)))); err != nil {
		return err
	}
	for _, item := range r.Items {
		line := fmt.Sprintf("  %s %s %s",
			styles.Checkbox(item.Completed),
			styles.SubtitleStyle.Render(fmt.Sprintf("#%-4d", item.ID)),
			styles.ValueStyle.Render(item.Title))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// deleteResult is the output of 'todo delete'
type deleteResult struct {
	ID      int  `json:"id"`
	Deleted bool `json:"deleted"`
}

func (r *deleteResult) GetID() int {
	return r.ID
}

func (r *deleteResult) PrintHuman(w io.Writer) error {
	if !r.Deleted {
		_, err := fmt.Fprintln(w, styles.SubtitleStyle.Render("Cancelled"))
		return err
	}
	_, err := fmt.Fprintln(w, styles.SuccessStyle.Render(fmt.Sprintf("Deleted to-do item %d", r.ID)))
	return err
}
