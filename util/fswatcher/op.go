package fswatcher

import "strings"

type Op uint16

const (
	Attrib Op = 1 << iota
	Create
	Modify // write, truncate
	Remove
	Rename

	AllOps Op = Attrib | Create | Modify | Remove | Rename
)

var opsNames = []string{"attrib", "create", "modify", "remove", "rename"}

func (op Op) HasAny(op2 Op) bool { return op&op2 != 0 }
func (op *Op) Add(op2 Op)        { *op |= op2 }
func (op *Op) Remove(op2 Op)     { *op &^= op2 }

func (op Op) String() string {
	u := []string{}
	for i, name := range opsNames {
		if op.HasAny(1 << uint(i)) {
			u = append(u, name)
		}
	}
	return strings.Join(u, "|")
}
