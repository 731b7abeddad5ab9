package lalr

import (
	"strings"

	"github.com/pterm/pterm"
)

// DumpStates renders every state and item, in the teacher's pterm
// tree style, for interactive grammar debugging (spec.md §9 doesn't
// mandate a format for this; it is purely diagnostic and unrelated to
// the persisted-table byte format in serialize.go).
func (t *Tables) DumpStates() string {
	root := pterm.TreeNode{Text: "CFSM"}
	for _, s := range t.States {
		node := pterm.TreeNode{Text: s.String(t.G)}
		root.Children = append(root.Children, node)
	}
	rendered, _ := pterm.DefaultTree.WithRoot(root).Srender()
	return rendered
}

// DumpConflicts renders the resolved conflicts recorded during Build,
// one line per conflict, in the order Build recorded them (by state;
// within a state the terminal order is not defined).
func (t *Tables) DumpConflicts() string {
	if len(t.Conflicts) == 0 {
		return "no conflicts"
	}
	var b strings.Builder
	for _, c := range t.Conflicts {
		pterm.Warning.Println("conflict at state", c.State, "on", t.G.Registry.Name(c.Terminal), "->", c.Winner)
		b.WriteString(t.G.Registry.Name(c.Terminal))
		b.WriteString(": ")
		b.WriteString(c.Winner)
		b.WriteByte('\n')
	}
	return b.String()
}
