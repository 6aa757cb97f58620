package sbml

// walkFrame is a node waiting to be visited and its depth below the walk
// root.
type walkFrame struct {
	node  Node
	depth int
}

// nodeStack is the work list of a pre-order walk.
type nodeStack struct {
	frames []walkFrame
}

func (s *nodeStack) empty() bool { return len(s.frames) == 0 }

func (s *nodeStack) push(node Node, depth int) {
	s.frames = append(s.frames, walkFrame{node: node, depth: depth})
}

func (s *nodeStack) pop() walkFrame {
	n := len(s.frames) - 1
	f := s.frames[n]
	s.frames[n] = walkFrame{}
	s.frames = s.frames[:n]
	return f
}

// pushChildren pushes the children of f in reverse so that they pop in
// document order.
func (s *nodeStack) pushChildren(f walkFrame) {
	children := f.node.children()
	for i := len(children) - 1; i >= 0; i-- {
		if children[i] != nil {
			s.push(children[i], f.depth+1)
		}
	}
}
