package tasklist

import (
	"fmt"

	"github.com/CalistaIo/ip/internal/model"
	"github.com/CalistaIo/ip/internal/parser"
)

// Action names what an Outcome describes.
type Action int

const (
	ActionShow Action = iota
	ActionDone
	ActionAdd
	ActionDelete
	ActionFind
)

// Outcome describes the effect of one command, for the caller to render.
type Outcome struct {
	Action Action
	// Tasks are the tasks the command touched: the one marked done, the one
	// added, or the ones removed in their original order.
	Tasks []model.Task
	// Lines are display strings for Show and Find.
	Lines []string
	// Count is the list size after the command.
	Count int
	// Mutated reports whether the list changed and must be persisted.
	Mutated bool
}

// Engine applies parsed commands to a TaskList.
type Engine struct {
	list *TaskList
}

func NewEngine(list *TaskList) *Engine {
	if list == nil {
		list = New()
	}
	return &Engine{list: list}
}

func (e *Engine) List() *TaskList {
	return e.list
}

// Apply executes cmd. Indices inside cmd must already be validated by the parser.
func (e *Engine) Apply(cmd parser.Command) Outcome {
	switch c := cmd.(type) {
	case parser.Show:
		return Outcome{Action: ActionShow, Lines: e.list.Lines(), Count: e.list.Len()}
	case parser.MarkDone:
		task := e.list.MarkDone(c.Index)
		return Outcome{Action: ActionDone, Tasks: []model.Task{task}, Count: e.list.Len(), Mutated: true}
	case parser.AddToDo:
		return e.add(model.NewToDo(c.Description))
	case parser.AddDeadline:
		return e.add(model.NewDeadline(c.Description, c.When))
	case parser.AddEvent:
		return e.add(model.NewEvent(c.Description, c.When))
	case parser.DeleteSome:
		removed := e.list.Delete(c.Contains)
		return Outcome{Action: ActionDelete, Tasks: removed, Count: e.list.Len(), Mutated: true}
	case parser.DeleteAll:
		removed := e.list.DeleteAll()
		return Outcome{Action: ActionDelete, Tasks: removed, Count: 0, Mutated: true}
	case parser.Find:
		return Outcome{Action: ActionFind, Lines: e.list.Find(c.Keyword), Count: e.list.Len()}
	default:
		panic(fmt.Sprintf("tasklist: unhandled command %T", cmd))
	}
}

func (e *Engine) add(task model.Task) Outcome {
	count := e.list.Add(task)
	return Outcome{Action: ActionAdd, Tasks: []model.Task{task}, Count: count, Mutated: true}
}
