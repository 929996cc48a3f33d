package tasks

import "context"

type TaskType string

const (
	TaskTypeConvertBOM       TaskType = "convert_bom"
	TaskTypeConvertPositions TaskType = "convert_positions"
)

type TaskInterface interface {
	Execute(ctx context.Context) error
	GetType() TaskType
	GetOutputFile() string
	// GetWarnings reports warnings accumulated during Execute, so strict-mode
	// callers can act on them without parsing log output.
	GetWarnings() []string
}

type Task struct {
	Type       TaskType
	InputFile  string
	OutputFile string
}

func (t *Task) GetType() TaskType {
	return t.Type
}

func (t *Task) GetOutputFile() string {
	return t.OutputFile
}

func NewTask(taskType TaskType, inputFile, outputFile string) Task {
	return Task{
		Type:       taskType,
		InputFile:  inputFile,
		OutputFile: outputFile,
	}
}
