package scene

// Node is one retained render node. Nodes persist across update cycles so
// that unchanged positions keep their identity (and with it any in-flight
// transition state the renderer attached).
type Node[D any] struct {
	Datum D
	// Gen counts the update cycles this node has survived. A freshly created
	// node starts at 0; every reuse increments it.
	Gen int
}

// Diff is the three-way result of one reconciliation pass, by position in
// the new datum list (Removed holds indices into the previous node list).
type Diff struct {
	Created []int
	Reused  []int
	Removed []int
}

// Layer is an arena of retained nodes for one render layer, keyed by
// position. Owned by a single component instance; never shared.
type Layer[D any] struct {
	nodes []*Node[D]
}

// Nodes exposes the retained node list. Callers must not reorder it.
func (l *Layer[D]) Nodes() []*Node[D] { return l.nodes }

// Sync reconciles the retained nodes against data positionally. Nodes at
// indices existing in both lists are reused with the new datum; trailing
// data gets fresh nodes; surplus nodes are dropped. The diff is positional,
// not keyed: if the caller reorders data between cycles, identity follows
// the position, not the datum. Callers that care about animation continuity
// must keep a stable order.
func (l *Layer[D]) Sync(data []D) Diff {
	var d Diff
	shared := len(l.nodes)
	if len(data) < shared {
		shared = len(data)
	}
	for i := 0; i < shared; i++ {
		l.nodes[i].Datum = data[i]
		l.nodes[i].Gen++
		d.Reused = append(d.Reused, i)
	}
	for i := len(data); i < len(l.nodes); i++ {
		d.Removed = append(d.Removed, i)
		l.nodes[i] = nil
	}
	l.nodes = l.nodes[:shared]
	for i := shared; i < len(data); i++ {
		l.nodes = append(l.nodes, &Node[D]{Datum: data[i]})
		d.Created = append(d.Created, i)
	}
	return d
}
