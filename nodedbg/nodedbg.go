/*
Package nodedbg implements helpers to debug a validom node tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nodedbg

import (
	"fmt"
	"strings"

	"github.com/npillmayer/validom"
	tp "github.com/xlab/treeprint"
)

// Sprint draws a node tree as indented text, one line per node. Intended
// for test output and interactive debugging.
func Sprint(n *validom.Node) string {
	printer := tp.New()
	ppn(printer, n)
	return printer.String()
}

func ppn(printer tp.Tree, n *validom.Node) {
	if n == nil {
		return
	}
	if n.IsText() {
		printer.AddNode(fmt.Sprintf("%q", n.Data()))
		return
	}
	if n.ChildCount() == 0 {
		printer.AddNode(label(n))
		return
	}
	branch := printer.AddBranch(label(n))
	for _, ch := range n.Children() {
		ppn(branch, ch)
	}
}

func label(n *validom.Node) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(n.Tag())
	for _, a := range n.Attributes() {
		fmt.Fprintf(&b, " %s=%q", a.Key, a.Value)
	}
	b.WriteString(">")
	return b.String()
}
