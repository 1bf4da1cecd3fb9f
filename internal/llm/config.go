// Package llm provides the generation-service client abstraction, a
// Gemini implementation, and the bounded retry decorator used by every
// outbound generation call.
package llm

// Task identifies the kind of generation request, used to pick a model.
type Task string

// Known generation tasks.
const (
	// TaskTailor generates tailored resumes and cover letters.
	TaskTailor Task = "tailor"
	// TaskRoast produces the scored roast critique.
	TaskRoast Task = "roast"
	// TaskParse extracts a structured CandidateProfile from resume text.
	TaskParse Task = "parse"
)

// Config maps tasks to model names.
type Config struct {
	Models map[Task]string
}

// DefaultConfig returns the default Gemini model assignments.
func DefaultConfig() *Config {
	return &Config{
		Models: map[Task]string{
			TaskTailor: "gemini-1.5-flash-latest",
			TaskRoast:  "gemini-2.0-flash",
			TaskParse:  "gemini-2.5-flash",
		},
	}
}

// Model returns the model name for a task, falling back to the tailor
// model when the task has no explicit assignment.
func (c *Config) Model(task Task) string {
	if model, ok := c.Models[task]; ok {
		return model
	}
	return c.Models[TaskTailor]
}

// WithModel returns a copy of the config with one task's model replaced.
func (c *Config) WithModel(task Task, model string) *Config {
	next := &Config{Models: make(map[Task]string, len(c.Models))}
	for k, v := range c.Models {
		next.Models[k] = v
	}
	next.Models[task] = model
	return next
}
