package codec

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ssharma/rollbook/pkg/student"
)

// Delimiter separates the fields of an encoded record line.
const Delimiter = "|"

// MalformedLineError reports a line that could not be decoded into a record.
type MalformedLineError struct {
	Line   string
	Reason string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed record line %q: %s", e.Line, e.Reason)
}

// LineCodec serializes student records to and from the delimited line format
// used by the record file:
//
//	roll|name|mark1|mark2|mark3
//
// Marks are written with exactly two decimal digits. The format has no
// delimiter escaping: a name containing '|' corrupts the row. That is a
// documented limitation of the format, not something the codec repairs.
type LineCodec struct{}

// NewLineCodec creates a new line codec instance.
func NewLineCodec() *LineCodec {
	return &LineCodec{}
}

// Encode serializes a record into a single line without a trailing newline.
// Derived fields are not persisted; they are recomputed on decode.
func (c *LineCodec) Encode(r *student.Record) string {
	var b strings.Builder
	b.WriteString(strconv.Itoa(r.Roll))
	b.WriteString(Delimiter)
	b.WriteString(r.Name)
	for _, m := range r.Marks {
		b.WriteString(Delimiter)
		b.WriteString(strconv.FormatFloat(m, 'f', 2, 64))
	}
	return b.String()
}

// Decode parses one line into a record. It fails when the roll or name field
// is missing, the name is blank, or the roll is not an integer. Missing or
// unparsable trailing mark fields are filled with 0.0 rather than failing.
// Derived fields are always recomputed from the parsed marks.
func (c *LineCodec) Decode(line string) (*student.Record, error) {
	line = strings.TrimRight(line, "\r\n")
	fields := strings.Split(line, Delimiter)
	if len(fields) < 2 {
		return nil, &MalformedLineError{Line: line, Reason: "need at least roll and name fields"}
	}

	roll, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return nil, &MalformedLineError{Line: line, Reason: "roll is not an integer"}
	}

	name := strings.TrimSpace(fields[1])
	if name == "" {
		return nil, &MalformedLineError{Line: line, Reason: "name is empty"}
	}

	r := &student.Record{Roll: roll, Name: name}
	for i := 0; i < student.SubjectCount; i++ {
		if 2+i >= len(fields) {
			break
		}
		m, err := strconv.ParseFloat(strings.TrimSpace(fields[2+i]), 64)
		if err != nil {
			continue
		}
		r.Marks[i] = m
	}
	r.Recompute()

	return r, nil
}
