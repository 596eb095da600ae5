package exprast

import (
	"fmt"
	"strings"
)

func (c *parseContext) tracef(format string, args ...interface{}) {
	if c.trace == nil {
		return
	}
	fmt.Fprintf(c.trace, "%s%s\n", strings.Repeat(" ", c.depth*2), fmt.Sprintf(format, args...))
}
