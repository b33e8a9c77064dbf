package workflow

// Toggle flips the workflow with the given id between Active and Paused and
// returns the resulting list. The input is never modified; Draft workflows and
// unknown ids yield an equal copy.
func Toggle(list []Definition, id int) []Definition {
	out := make([]Definition, len(list))
	copy(out, list)
	for i := range out {
		if out[i].ID == id {
			out[i].Status = out[i].Status.Toggled()
		}
	}
	return out
}

// Clone returns a copy of list that can be handed to a session without
// sharing the backing array.
func Clone(list []Definition) []Definition {
	if list == nil {
		return nil
	}
	out := make([]Definition, len(list))
	copy(out, list)
	return out
}
