package task

// Subtask sequence transforms. Each returns a new slice; the input is
// never mutated so callers can hand the result to an update operation
// while older snapshots stay valid.

// ToggleSubtask flips the completed flag of the subtask with the given
// ID. Unknown IDs leave the sequence unchanged.
func ToggleSubtask(subtasks []Subtask, id string) []Subtask {
	out := append([]Subtask(nil), subtasks...)
	for i := range out {
		if out[i].ID == id {
			out[i].Completed = !out[i].Completed
			break
		}
	}
	return out
}

// EditSubtask replaces the title of the subtask with the given ID.
// Unknown IDs leave the sequence unchanged.
func EditSubtask(subtasks []Subtask, id, title string) []Subtask {
	out := append([]Subtask(nil), subtasks...)
	for i := range out {
		if out[i].ID == id {
			out[i].Title = title
			break
		}
	}
	return out
}

// DeleteSubtask removes the subtask with the given ID. Unknown IDs
// leave the sequence unchanged.
func DeleteSubtask(subtasks []Subtask, id string) []Subtask {
	out := make([]Subtask, 0, len(subtasks))
	for _, st := range subtasks {
		if st.ID == id {
			continue
		}
		out = append(out, st)
	}
	return out
}
