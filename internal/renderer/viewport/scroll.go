package viewport

// scrollAxis returns the window origin along one axis that keeps cursor
// visible in a window of the given size over content of the given extent.
//
// The origin is clamped into [lo, hi] where lo is the smallest origin that
// still shows the cursor and hi is the largest origin that neither scrolls
// past the content nor past the cursor. The current origin is kept whenever
// it already lies in that interval, so the window only moves when it must.
func scrollAxis(origin, size, cursor, extent int) int {
	lo := cursor - min(size-1, cursor)
	hi := max(extent-min(size, extent), lo)
	hi = min(hi, cursor)
	return min(max(origin, lo), hi)
}
