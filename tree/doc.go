/*
Package tree models the skeleton of the adaptive quadtree/octree that drives
the block decomposition of the mesh.

A node's position is a (depth, ijk) pair: ijk indexes the uniform grid of
blocks that would tile the domain if every block at that depth existed. The
tree's Base point records the coarsest such grid, so the physical footprint
of any node follows from pure arithmetic (see BlockDomain) without walking
the tree.

The ordering contract matters more than the structure: CollectLeaves visits
children in slot order, depth first, and every consumer that emits per leaf
data derives its ordering from indices into one collected sequence. Two
consumers that each collect leaves from the same tree therefore agree on
leaf indices, which is what allows the visualization writers to emit
geometry, connectivity, and per cell metadata as independent arrays.
*/
package tree
