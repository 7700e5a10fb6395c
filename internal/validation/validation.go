// Package validation reports data problems that would make the chart
// misleading or hide tasks.
package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/gantt/internal/models"
)

// ConflictType represents the type of validation conflict
type ConflictType string

const (
	ConflictInvertedRange     ConflictType = "inverted_range"
	ConflictOrphanTask        ConflictType = "orphan_task"
	ConflictDuplicateTaskID   ConflictType = "duplicate_task_id"
	ConflictPercentageRange   ConflictType = "percentage_out_of_range"
	ConflictOutsideChartRange ConflictType = "outside_chart_range"
	ConflictDuplicateCategory ConflictType = "duplicate_category_name"
)

// Conflict represents one detected problem.
type Conflict struct {
	Type        ConflictType
	Description string
	TaskIDs     []int
}

// Result contains all detected conflicts.
type Result struct {
	Conflicts []Conflict
}

// FixAction describes a change made by Fix.
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Of returns the conflicts of the given type.
func (r *Result) Of(t ConflictType) []Conflict {
	var out []Conflict
	for _, c := range r.Conflicts {
		if c.Type == t {
			out = append(out, c)
		}
	}
	return out
}

// FormatReport returns a human-readable report of all conflicts
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}
	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range r.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

// Validator checks tasks against their categories and, when set, the chart
// range.
type Validator struct {
	start, end time.Time
	hasRange   bool
}

func New() *Validator {
	return &Validator{}
}

// WithRange enables the outside-chart-range check for [start, end].
func (v *Validator) WithRange(start, end time.Time) *Validator {
	v.start, v.end, v.hasRange = models.Day(start), models.Day(end), true
	return v
}

func (v *Validator) Validate(categories []models.Category, tasks []models.Task) Result {
	var result Result

	names := make(map[string][]int)
	known := make(map[int]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
		key := strings.ToLower(strings.TrimSpace(c.Name))
		names[key] = append(names[key], c.ID)
	}
	for _, key := range sortedKeys(names) {
		if ids := names[key]; len(ids) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateCategory,
				Description: fmt.Sprintf("Duplicate category name: %q (IDs: %v)", key, ids),
			})
		}
	}

	seen := make(map[int]int)
	for _, t := range tasks {
		seen[t.ID]++
		if seen[t.ID] == 2 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateTaskID,
				Description: fmt.Sprintf("Task ID %d is used more than once", t.ID),
				TaskIDs:     []int{t.ID},
			})
		}

		if !t.Valid() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictInvertedRange,
				Description: fmt.Sprintf("Task %q ends (%s) before it starts (%s)",
					t.Name, models.FormatDate(t.EndDate), models.FormatDate(t.StartDate)),
				TaskIDs: []int{t.ID},
			})
		}

		if !known[t.CategoryID] {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictOrphanTask,
				Description: fmt.Sprintf("Task %q references missing category %d and is hidden from the chart", t.Name, t.CategoryID),
				TaskIDs:     []int{t.ID},
			})
		}

		if t.Percentage < 0 || t.Percentage > 100 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictPercentageRange,
				Description: fmt.Sprintf("Task %q has progress %d%%, expected 0-100", t.Name, t.Percentage),
				TaskIDs:     []int{t.ID},
			})
		}

		if v.hasRange && (models.Day(t.StartDate).Before(v.start) || models.Day(t.EndDate).After(v.end)) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type: ConflictOutsideChartRange,
				Description: fmt.Sprintf("Task %q (%s to %s) extends outside the chart (%s to %s)",
					t.Name, models.FormatDate(t.StartDate), models.FormatDate(t.EndDate),
					models.FormatDate(v.start), models.FormatDate(v.end)),
				TaskIDs: []int{t.ID},
			})
		}
	}

	return result
}

// Fix repairs what can be repaired without guessing: inverted ranges are
// swapped and percentages clamped. The input slice is not modified.
func Fix(tasks []models.Task, result Result) ([]models.Task, []FixAction) {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)

	index := make(map[int]int, len(out))
	for i, t := range out {
		if _, dup := index[t.ID]; !dup {
			index[t.ID] = i
		}
	}

	var actions []FixAction
	for _, c := range result.Conflicts {
		for _, id := range c.TaskIDs {
			i, ok := index[id]
			if !ok {
				continue
			}
			t := &out[i]
			switch c.Type {
			case ConflictInvertedRange:
				if t.Valid() {
					continue
				}
				t.StartDate, t.EndDate = t.EndDate, t.StartDate
				actions = append(actions, FixAction{
					Action:         fmt.Sprintf("Swapped start and end of task %q", t.Name),
					SourceConflict: c,
				})
			case ConflictPercentageRange:
				p := min(max(t.Percentage, 0), 100)
				if p == t.Percentage {
					continue
				}
				t.Percentage = p
				actions = append(actions, FixAction{
					Action:         fmt.Sprintf("Clamped progress of task %q to %d%%", t.Name, p),
					SourceConflict: c,
				})
			}
		}
	}
	return out, actions
}

func sortedKeys(m map[string][]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
