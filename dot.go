// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package birp

import (
	"bufio"
	"fmt"
	"os"
)

// PrintDot writes a Graphviz description of the diagram rooted at node to
// filename, or to standard output if filename is "-". Leaves are drawn as
// filled boxes labeled with their grayscale value; internal nodes are
// labeled with their level. The left (0) child is reached by a dotted edge,
// the right (1) child by a solid edge.
func (s *Store) PrintDot(node Node, filename string) error {
	var out *os.File
	var err error
	if filename == "-" {
		out = os.Stdout
	} else {
		out, err = os.Create(filename)
		if err != nil {
			return wrapError(Io, err, "create dot file %q", filename)
		}
		defer out.Close()
	}
	w := bufio.NewWriter(out)
	fmt.Fprintln(w, "digraph G {")
	err = s.Allnodes(node, func(n Node) error {
		if s.Level(n) == 0 {
			fmt.Fprintf(w, "%d [shape=box, style=filled, label=\"%d\"];\n", n, byte(n))
			return nil
		}
		fmt.Fprintf(w, "%d %s\n", n, dotlabel(n, s.Level(n)))
		fmt.Fprintf(w, "%d -> %d [style=dotted];\n", n, s.Left(n))
		fmt.Fprintf(w, "%d -> %d [style=filled];\n", n, s.Right(n))
		return nil
	})
	if err != nil {
		w.Flush()
		return err
	}
	fmt.Fprintln(w, "}")
	return w.Flush()
}

func dotlabel(id Node, level int32) string {
	return fmt.Sprintf(`[label=<
	<FONT POINT-SIZE="20">%d</FONT>
	<FONT POINT-SIZE="10">[%d]</FONT>
>];`, level, id)
}
