package task

// Queue is the TaskQueue substate: an ordered list of Task records.
// Queue is a value type; Reduce returns a new Queue rather than
// mutating the receiver (spec.md §3, "no action mutates prior state in
// place").
type Queue []Task

// Reduce applies action to queue and returns the resulting queue,
// following the dedup and identity invariants of spec.md §4.2 (ported
// from the original task_reducer in reducers/tasks.py).
func Reduce(queue Queue, action Action) Queue {
	switch action.Type {
	case AddTask:
		if taskToAddExists(queue, action) {
			return queue
		}
		nextID := 1
		if len(queue) > 0 {
			nextID = queue[len(queue)-1].TaskID + 1
		}
		next := make(Queue, len(queue), len(queue)+1)
		copy(next, queue)
		return append(next, Task{
			TaskID:   nextID,
			Kind:     action.Kind,
			Params:   action.Params,
			Complete: false,
		})

	case ResolveTask:
		idx := indexOf(queue, action.TaskID)
		if idx < 0 {
			return queue
		}
		next := make(Queue, len(queue))
		copy(next, queue)
		t := next[idx]
		t.Complete = true
		t.Success = action.Success
		t.Result = action.Result
		next[idx] = t
		return next

	case UpdateTask:
		idx := indexOf(queue, action.TaskID)
		if idx < 0 {
			return queue
		}
		next := make(Queue, len(queue))
		copy(next, queue)
		t := next[idx]
		t.Kind = action.Kind
		t.Params = action.Params
		next[idx] = t
		return next

	default:
		return queue
	}
}

func indexOf(queue Queue, taskID int) int {
	for i, t := range queue {
		if t.TaskID == taskID {
			return i
		}
	}
	return -1
}

// taskToAddExists implements the dedup predicate of spec.md §4.2:
// VALIDATE_EXPECTED_NODE_CLASS dedupes on (name, node_id);
// VALIDATE_PROPERTY and VALIDATE_RDF_TYPE_PROPERTY dedupe on
// (node_id, prop_name); every other kind is never deduplicated.
func taskToAddExists(queue Queue, action Action) bool {
	switch action.Kind {
	case ValidateExpectedNodeClass:
		for _, t := range queue {
			if t.Kind == action.Kind && t.Params.NodeID == action.Params.NodeID {
				return true
			}
		}
		return false
	case ValidateProperty, ValidateRDFTypeProperty:
		for _, t := range queue {
			if t.Params.NodeID == action.Params.NodeID && t.Params.PropName == action.Params.PropName {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// ActiveTasks returns the tasks with Complete == false.
func (q Queue) ActiveTasks() []Task {
	var out []Task
	for _, t := range q {
		if !t.Complete {
			out = append(out, t)
		}
	}
	return out
}

// NextActive returns the lowest-TaskID active task, and whether one
// exists (spec.md §4.10: "Select the lowest-task_id active task").
func (q Queue) NextActive() (Task, bool) {
	active := q.ActiveTasks()
	if len(active) == 0 {
		return Task{}, false
	}
	next := active[0]
	for _, t := range active[1:] {
		if t.TaskID < next.TaskID {
			next = t
		}
	}
	return next, true
}
