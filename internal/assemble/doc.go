// Package assemble concatenates the rendered page PDFs into the final
// document and wires up its internal navigation.
//
// Pages are merged strictly in order-index order, table of contents first;
// the assembler never reorders what the resolver decided. After the merge,
// an outline (bookmark) tree is attached: one entry per content page at its
// cumulative page offset, nested according to hierarchy depth. PDF viewers
// surface the outline as the document's navigation panel, which keeps the
// merged artifact navigable even where in-page anchors did not survive
// capture.
//
// Producing an empty document is a fatal error: if no pages rendered, the
// assembler refuses to write anything.
package assemble
