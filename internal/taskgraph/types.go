package taskgraph

// Task is one orchestration-layer task: a group of pipeline nodes plus the
// names of the groups it directly depends on.
type Task struct {
	// Name is the normalized group identifier, safe for the target format.
	Name string

	// Members are the original node names in this group, ascending.
	Members []string

	// DependsOn are the upstream group names, ascending. Dependencies
	// between members of the same group are internal and never appear here.
	DependsOn []string
}

// TaskGraph is the ordered, immutable task-graph description handed to the
// renderer. Tasks appear after every task they depend on.
type TaskGraph struct {
	Tasks []Task
}

// Task returns the task with the given name, if present.
func (tg *TaskGraph) Task(name string) (Task, bool) {
	for _, t := range tg.Tasks {
		if t.Name == name {
			return t, true
		}
	}
	return Task{}, false
}
