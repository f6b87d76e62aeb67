// Package errs builds user-facing error messages from loose arguments.
package errs

import (
	"bytes"
	"strconv"
)

type errMessage struct {
	message string
}

func (e *errMessage) Error() string {
	return e.message
}

// New joins the arguments into a single space-separated error message.
// Strings, ints, float64s and nested errors are supported; a ':' rune
// attaches to the previous word.
func New(args ...any) error {
	var out bytes.Buffer
	var space string

	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			if v == "" {
				continue
			}
			out.WriteString(space + v)
		case rune:
			if v == ':' {
				out.WriteString(":")
				continue
			}
			out.WriteString(space + string(v))
		case int:
			out.WriteString(space + strconv.Itoa(v))
		case float64:
			out.WriteString(space + strconv.FormatFloat(v, 'f', -1, 64))
		case error:
			out.WriteString(space + v.Error())
		default:
			out.WriteString(space + "unsupported argument")
		}
		space = " "
	}

	return &errMessage{message: out.String()}
}
