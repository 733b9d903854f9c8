package options

import "fmt"

// NotFoundError reports an option identifier with no cached context.
type NotFoundError struct {
	OptionID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("option %s not found", e.OptionID)
}

// IndexOutOfRangeError reports a cached bullet context whose coordinates no
// longer fit the document being updated.
type IndexOutOfRangeError struct {
	Field  string
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range (length %d)", e.Field, e.Index, e.Length)
}
