package complete

// MaxDisplay is the maximum number of candidates shown at once in the
// completion summary.
const MaxDisplay = 10

// WindowStart returns the index of the first candidate to display when sel
// is selected among n candidates. The window starts at 0 while the selection
// is in the first half-window, ends at the last candidate while the
// selection is in the last half-window, and is centered on the selection
// otherwise.
func WindowStart(sel, n int) int {
	if n <= MaxDisplay {
		return 0
	}
	switch half := MaxDisplay / 2; {
	case sel < half:
		return 0
	case sel > n-half:
		return n - MaxDisplay
	default:
		return sel - half
	}
}
