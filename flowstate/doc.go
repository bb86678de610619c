// Package flowstate represents a unit-capacity s-t flow over the arcs of a
// graphcsr.Graph.
//
// A Flow is a function a -> {-1, 0, +1} satisfying F(a) = -F(BackArc(a)).
// Conceptually two bits per arc would be enough to store {-1,0,+1} plus one
// spare code; this package keeps that texture (three used encodings out of
// four representable by two bits) rather than spending a full byte or int8
// per arc, since the cutter re-examines every cut-front arc on most
// advances and the flow array is touched far more often than it is resized.
//
// An arc a carries flow "from u to v" (u = Tail(a), v = Head(a)) when
// F(a) == +1; it is then saturated under FlowCutter's fixed unit capacity.
package flowstate
