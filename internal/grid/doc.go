// Package grid implements the constraint-based grid layout engine.
//
// A grid is a set of column and row tracks. Widgets occupy a span of tracks
// on each axis and declare minimum and maximum sizes; the [GridEngine] turns
// those requests plus a desired overall size into track sizes and one
// rectangle per widget.
//
// Track bookkeeping is incremental. [GridTrack] remembers how many cells
// hold it at its current size, so growing a cell is O(1) and shrinking one
// only asks the caller to replay the track when the largest cell goes away.
package grid
