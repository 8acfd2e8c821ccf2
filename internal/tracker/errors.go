package tracker

import "errors"

var (
	ErrNoCurrentWeek    = errors.New("no current week selected")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrNameRequired     = errors.New("exercise name is required")
	ErrEmptyRemark      = errors.New("remark text is required")
	ErrNoDays           = errors.New("no workout data found")
	ErrInvalidStartDate = errors.New("start date must be YYYY-MM-DD")
	ErrNothingToUndo    = errors.New("nothing to undo")
)
