package model

// TOCOrderIndex is the reserved order index for the table-of-contents page.
// It sorts before all content pages, which start at index 0.
const TOCOrderIndex = -1

// RenderedPage is the fixed-page-size PDF produced for one PageRecord or
// for the generated table of contents. The set of RenderedPages, sorted by
// OrderIndex, is exactly what the assembler concatenates.
type RenderedPage struct {
	// File is the path of the intermediate single-page-set PDF on disk.
	File string `json:"file"`

	// OrderIndex is inherited from the source PageRecord, or TOCOrderIndex
	// for the table of contents.
	OrderIndex int `json:"order_index"`

	// Title is carried over from the source record for outline bookmarks.
	Title string `json:"title"`

	// Depth is carried over from the source record for outline nesting.
	Depth int `json:"depth"`
}
