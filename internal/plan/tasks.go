package plan

import (
	"strings"

	"github.com/google/uuid"

	"github.com/fbarrientos/autoeval/internal/catalog"
)

// Task is one actionable item extracted from an area plan.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	AreaTitle string `json:"area_title"`
	Completed bool   `json:"completed"`
}

// ExtractTasks pulls the "- " bullet lines out of every area plan, in
// catalog order, as a fresh task list. Completion state of a previous
// list is not carried over: regeneration replaces the list wholesale.
func ExtractTasks(p Plan) []Task {
	var tasks []Task
	for _, a := range catalog.Areas() {
		st, ok := p.Areas[a.ID]
		if !ok || st.Content == "" {
			continue
		}
		for _, line := range strings.Split(st.Content, "\n") {
			line = strings.TrimSpace(line)
			if !strings.HasPrefix(line, "- ") {
				continue
			}
			text := strings.TrimSpace(strings.TrimPrefix(line, "- "))
			if text == "" {
				continue
			}
			tasks = append(tasks, Task{
				ID:        uuid.NewString(),
				Text:      text,
				AreaTitle: a.Title,
			})
		}
	}
	return tasks
}

// ToggleTask flips the completed flag of the task with the given id and
// returns a new slice. Unknown ids leave the list unchanged.
func ToggleTask(tasks []Task, id string) []Task {
	out := make([]Task, len(tasks))
	copy(out, tasks)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
			break
		}
	}
	return out
}

// CompletedCount returns how many tasks are done.
func CompletedCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// TaskProgress returns the completion percentage, 0 for an empty list.
func TaskProgress(tasks []Task) int {
	if len(tasks) == 0 {
		return 0
	}
	return CompletedCount(tasks) * 100 / len(tasks)
}

// HasCompletionState reports whether any task was checked off. Used to
// warn before a regeneration discards the list.
func HasCompletionState(tasks []Task) bool {
	return CompletedCount(tasks) > 0
}
