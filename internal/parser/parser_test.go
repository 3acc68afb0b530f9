package parser

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseCommands(t *testing.T) {
	cases := []struct {
		line string
		size int
		want Command
	}{
		{"list", 0, Show{}},
		{"done 1", 1, MarkDone{Index: 0}},
		{"done 3", 5, MarkDone{Index: 2}},
		{"todo read book", 0, AddToDo{Description: "read book"}},
		{"todo  padded", 0, AddToDo{Description: " padded"}},
		{"deadline return book /by 2024-12-02", 0, AddDeadline{Description: "return book", When: "Dec 2 2024"}},
		{"deadline return book /by 2024-12-02 1800", 0, AddDeadline{Description: "return book", When: "Dec 2 2024 6.00pm"}},
		{"event meeting /at 2025-01-15 0930", 0, AddEvent{Description: "meeting", When: "Jan 15 2025 9.30am"}},
		{"delete all", 0, DeleteAll{}},
		{"delete 2 4", 5, DeleteSome{Indices: []int{1, 3}}},
		{"delete 4 2 4", 5, DeleteSome{Indices: []int{1, 3}}},
		{"delete 1 ", 3, DeleteSome{Indices: []int{0}}},
		{"delete 3 1  ", 3, DeleteSome{Indices: []int{0, 2}}},
		{"todo milk|eggs", 0, AddToDo{Description: "milk|eggs"}},
		{"todo a |b", 0, AddToDo{Description: "a |b"}},
		{"find book", 0, Find{Keyword: "book"}},
		{"find book club", 0, Find{Keyword: "book"}},
	}

	for _, c := range cases {
		got, err := Parse(c.line, c.size)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", c.line, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Parse(%q): expected %#v, got %#v", c.line, c.want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		line string
		size int
		kind error
		want error
	}{
		{"", 0, ErrInvalidCommand, ErrUnknownCommand},
		{"List", 0, ErrInvalidCommand, ErrUnknownCommand},
		{"list all", 0, ErrInvalidCommand, ErrUnknownCommand},
		{"todoread", 0, ErrInvalidCommand, ErrUnknownCommand},
		{"blah", 3, ErrInvalidCommand, ErrUnknownCommand},

		{"done", 3, ErrInvalidDoneArgument, ErrDoneNotSpecified},
		{"done ", 3, ErrInvalidDoneArgument, ErrDoneNotSpecified},
		{"done two", 3, ErrInvalidDoneArgument, ErrDoneNotNumber},
		{"done 0", 3, ErrInvalidDoneArgument, ErrDoneOutOfRange},
		{"done 4", 3, ErrInvalidDoneArgument, ErrDoneOutOfRange},
		{"done 99", 3, ErrInvalidDoneArgument, ErrDoneOutOfRange},

		{"todo", 0, ErrInvalidTaskArgument, ErrToDoEmpty},
		{"todo ", 0, ErrInvalidTaskArgument, ErrToDoEmpty},
		{"deadline", 0, ErrInvalidTaskArgument, ErrDeadlineIncomplete},
		{"deadline return book", 0, ErrInvalidTaskArgument, ErrDeadlineIncomplete},
		{"deadline return book /at 2024-12-02", 0, ErrInvalidTaskArgument, ErrDeadlineIncomplete},
		{"deadline a /by 2024-12-02 /by 2024-12-03", 0, ErrInvalidTaskArgument, ErrDeadlineIncomplete},
		{"event", 0, ErrInvalidTaskArgument, ErrEventIncomplete},
		{"event party", 0, ErrInvalidTaskArgument, ErrEventIncomplete},
		{"todo buy milk | eggs", 0, ErrInvalidTaskArgument, ErrTaskSeparator},
		{"todo buy milk |", 0, ErrInvalidTaskArgument, ErrTaskSeparator},
		{"deadline pay | rent /by 2024-12-02", 0, ErrInvalidTaskArgument, ErrTaskSeparator},
		{"event party | games /at 2024-12-02", 0, ErrInvalidTaskArgument, ErrTaskSeparator},
		{"deadline pay rent | /by 2024-12-02", 0, ErrInvalidTaskArgument, ErrTaskSeparator},

		{"deadline return book /by tomorrow", 0, ErrDate, ErrBadDate},
		{"event party /at 2024-12-02 6pm", 0, ErrDate, ErrBadDate},

		{"delete", 3, ErrInvalidDeleteArgument, ErrDeleteNotSpecified},
		{"delete ", 3, ErrInvalidDeleteArgument, ErrDeleteNotSpecified},
		{"delete   ", 3, ErrInvalidDeleteArgument, ErrDeleteNotSpecified},
		{"delete one", 3, ErrInvalidDeleteArgument, ErrDeleteNotNumber},
		{"delete 1  2", 3, ErrInvalidDeleteArgument, ErrDeleteNotNumber},
		{"delete 1 4", 3, ErrInvalidDeleteArgument, ErrDeleteOutOfRange},
		{"delete 0", 3, ErrInvalidDeleteArgument, ErrDeleteOutOfRange},
		{"delete 9 x", 3, ErrInvalidDeleteArgument, ErrDeleteOutOfRange},

		{"find", 0, ErrInvalidFindArgument, ErrFindNotSpecified},
		{"find ", 0, ErrInvalidFindArgument, ErrFindNotSpecified},
	}

	for _, c := range cases {
		cmd, err := Parse(c.line, c.size)
		if err == nil {
			t.Errorf("Parse(%q): expected error, got %#v", c.line, cmd)
			continue
		}
		if !errors.Is(err, c.kind) {
			t.Errorf("Parse(%q): expected kind %v, got %v", c.line, c.kind, err)
		}
		if !errors.Is(err, c.want) {
			t.Errorf("Parse(%q): expected %q, got %q", c.line, c.want, err)
		}
		var perr *Error
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q): expected *Error, got %T", c.line, err)
		}
	}
}

func TestErrorKindsAreDistinct(t *testing.T) {
	if errors.Is(ErrDoneNotNumber, ErrDoneOutOfRange) {
		t.Error("Expected different done errors to be distinguishable")
	}
	if errors.Is(ErrDeleteNotNumber, ErrInvalidDoneArgument) {
		t.Error("Expected delete error not to match the done kind")
	}
	if ErrDoneNotSpecified.Error() == ErrDoneOutOfRange.Error() {
		t.Error("Expected distinct messages")
	}
	if !errors.Is(ErrBadDate, ErrDate) {
		t.Errorf("Expected ErrDate kind, got %v", ErrBadDate)
	}
	if !errors.Is(ErrTaskSeparator, ErrInvalidTaskArgument) {
		t.Errorf("Expected task argument kind, got %v", ErrTaskSeparator)
	}
}
