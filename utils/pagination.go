package utils

// PageBounds returns the slice window [start, end) of page over total items.
// Pages past the end yield an empty window. page and limit must be >= 1.
func PageBounds(total, page, limit int) (start, end int) {
	if page-1 >= total/limit+1 {
		return total, total
	}
	start = (page - 1) * limit
	if start > total {
		start = total
	}
	end = total
	if total-start > limit {
		end = start + limit
	}
	return start, end
}
