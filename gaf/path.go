package gaf

import (
	"errors"
	"strings"
)

// A Step is one oriented segment of a path.
type Step struct {
	Segment string
	Reverse bool
}

var errEmptySegment = errors.New("empty path segment")

// Steps splits the path into its oriented segments. A stable sequence
// name yields a single forward step. An absent path yields no steps.
func (rec *Record) Steps() ([]Step, error) {
	path := rec.PathName
	if path == "" {
		return nil, nil
	}
	if path[0] != '>' && path[0] != '<' {
		return []Step{{Segment: path}}, nil
	}
	var steps []Step
	for path != "" {
		reverse := path[0] == '<'
		path = path[1:]
		end := strings.IndexAny(path, "<>")
		if end < 0 {
			end = len(path)
		}
		if end == 0 {
			return nil, errEmptySegment
		}
		steps = append(steps, Step{Segment: path[:end], Reverse: reverse})
		path = path[end:]
	}
	return steps, nil
}

// AppendPath appends the orient-and-name form of steps to out.
func AppendPath(out []byte, steps []Step) []byte {
	for _, step := range steps {
		if step.Reverse {
			out = append(out, '<')
		} else {
			out = append(out, '>')
		}
		out = append(out, step.Segment...)
	}
	return out
}
