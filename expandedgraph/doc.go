// Package expandedgraph implements the node-split transform that turns
// a vertex-separator search into an arc-cut search: every node v of the
// original graph becomes two nodes v_in and v_out joined by a
// unit-capacity internal arc pair, every original arc u->v becomes n+1
// parallel u_out->v_in arcs (each with its own v_in->u_out reverse arc),
// and a cutter run on the expanded graph reports, via the
// internal arcs it cuts, exactly the vertex separator of the original
// graph (cutting v_in->v_out "removes" v).
package expandedgraph
