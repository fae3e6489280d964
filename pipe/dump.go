package pipe

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders the pipeline topology as an indented tree, one branch per
// stage in chain order. Handy for tracing and for test output.
//
//   .
//   └── [1] rotator  (queue 10)
//       └── [2] logger  (queue 10) → stdout
func (p *Pipeline) Dump() string {
	tree := tp.New()
	branch := tree
	for i, s := range p.stages {
		label := fmt.Sprintf("[%d] %s  (queue %d)", i+1, s.Name(), p.queueSize)
		if i == len(p.stages)-1 {
			label += " → stdout"
		}
		branch = branch.AddBranch(label)
	}
	return tree.String()
}
