package parser

import "sort"

// Command is a validated user instruction. The set of variants is closed.
type Command interface {
	command()
}

type Show struct{}

type MarkDone struct {
	Index int
}

type AddToDo struct {
	Description string
}

type AddDeadline struct {
	Description string
	When        string
}

type AddEvent struct {
	Description string
	When        string
}

type DeleteAll struct{}

// DeleteSome holds zero-based indices, ascending and without duplicates.
type DeleteSome struct {
	Indices []int
}

type Find struct {
	Keyword string
}

func (Show) command()        {}
func (MarkDone) command()    {}
func (AddToDo) command()     {}
func (AddDeadline) command() {}
func (AddEvent) command()    {}
func (DeleteAll) command()   {}
func (DeleteSome) command()  {}
func (Find) command()        {}

// Contains reports whether i is one of the indices to delete.
func (d DeleteSome) Contains(i int) bool {
	n := sort.SearchInts(d.Indices, i)
	return n < len(d.Indices) && d.Indices[n] == i
}

func newDeleteSome(indices []int) DeleteSome {
	sort.Ints(indices)
	unique := indices[:0]
	for _, idx := range indices {
		if len(unique) > 0 && unique[len(unique)-1] == idx {
			continue
		}
		unique = append(unique, idx)
	}
	return DeleteSome{Indices: unique}
}
