package gobble

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/repr"
)

type tracer struct {
	w     io.Writer
	depth int
}

func (t *tracer) enter(src *Source, index int, name string) {
	fmt.Fprintf(t.w, "%s%s %s\n", strings.Repeat(" ", t.depth*2), src.Position(index), name)
	t.depth++
}

func (t *tracer) exit(value interface{}, err error) {
	t.depth--
	indent := strings.Repeat(" ", t.depth*2+2)
	if err != nil {
		fmt.Fprintf(t.w, "%s! %s\n", indent, message(err))
		return
	}
	fmt.Fprintf(t.w, "%s= %s\n", indent, repr.String(value))
}

func traceParse[T any](p *Parser[T], src *Source, index int) (T, int, error) {
	src.trace.enter(src, index, p.name)
	value, next, err := p.step(src, index)
	src.trace.exit(value, err)
	return value, next, err
}

func message(err error) string {
	if perr, ok := err.(*Error); ok {
		return perr.Message()
	}
	return err.Error()
}
