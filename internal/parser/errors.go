package parser

import "errors"

// Error kinds. Every *Error unwraps to exactly one of these.
var (
	ErrInvalidCommand        = errors.New("invalid command")
	ErrInvalidDoneArgument   = errors.New("invalid done argument")
	ErrInvalidTaskArgument   = errors.New("invalid task argument")
	ErrInvalidDeleteArgument = errors.New("invalid delete argument")
	ErrInvalidFindArgument   = errors.New("invalid find argument")
	ErrDate                  = errors.New("invalid date")
)

const oops = "☹ OOPS!!! "

// Error is a parse failure with a fixed message meant for the user.
type Error struct {
	kind error
	msg  string
}

func newError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Unwrap() error {
	return e.kind
}

var (
	ErrUnknownCommand = newError(ErrInvalidCommand, oops+"I'm sorry, but I don't know what that means :-(")

	ErrDoneNotSpecified = newError(ErrInvalidDoneArgument, oops+"The task to be marked as done is not specified.")
	ErrDoneNotNumber    = newError(ErrInvalidDoneArgument, oops+"The task to be marked as done is not specified by a valid number.")
	ErrDoneOutOfRange   = newError(ErrInvalidDoneArgument, oops+"The number specified does not represent a valid task.")

	ErrToDoEmpty          = newError(ErrInvalidTaskArgument, oops+"The description of a todo cannot be empty.")
	ErrDeadlineIncomplete = newError(ErrInvalidTaskArgument, oops+"The deadline is lacking a description/date.")
	ErrEventIncomplete    = newError(ErrInvalidTaskArgument, oops+"The event is lacking a description/date.")
	ErrTaskSeparator      = newError(ErrInvalidTaskArgument, oops+"The description cannot contain \" | \" or end with \" |\".")

	ErrDeleteNotSpecified = newError(ErrInvalidDeleteArgument, oops+"The tasks to be deleted are not specified.")
	ErrDeleteNotNumber    = newError(ErrInvalidDeleteArgument, oops+"There is a task to be deleted that is not specified by a valid number.")
	ErrDeleteOutOfRange   = newError(ErrInvalidDeleteArgument, oops+"There is a number specified that does not represent a valid task.")

	ErrFindNotSpecified = newError(ErrInvalidFindArgument, oops+"The keyword to search for is not specified.")

	ErrBadDate = newError(ErrDate, "Sorry! I don't understand the date/time. Please specify the date/time in YYYY-MM-DD or YYYY-MM-DD HHMM format.")
)
