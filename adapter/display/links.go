package display

// coalesceLinks merges links sharing a node pair (in either direction) into
// a single entry, concatenating names with " | ", so parallel and
// reversed-parallel edges between the same two nodes render as one link
// instead of overlapping (jsongraph.py._expo_links_postprocessing).
//
// A link discovered in the reverse direction of an already-seen pair has
// its own name/fullName cleared and is kept as a second, blank entry
// alongside the merged one, matching the original's "double_links" table.
func coalesceLinks(links []Link) []Link {
	type key = string

	connections := make(map[key]*Link)
	order := make([]key, 0, len(links))

	doubleLinks := make(map[key]*Link)
	doubleOrder := make([]key, 0)

	for _, l := range links {
		l := l
		forward := l.Source + l.Target
		backward := l.Target + l.Source

		if existing, ok := connections[forward]; ok {
			existing.Name += " | " + l.Name
			existing.FullName += " | " + l.FullName
			continue
		}
		if existing, ok := connections[backward]; ok {
			existing.Name += " | " + l.Name
			existing.FullName += " | " + l.FullName
			if _, seen := doubleLinks[backward]; !seen {
				blank := l
				blank.Name = ""
				blank.FullName = ""
				doubleLinks[backward] = &blank
				doubleOrder = append(doubleOrder, backward)
			}
			continue
		}
		connections[forward] = &l
		order = append(order, forward)
	}

	out := make([]Link, 0, len(order)+len(doubleOrder))
	for _, k := range order {
		out = append(out, *connections[k])
	}
	for _, k := range doubleOrder {
		out = append(out, *doubleLinks[k])
	}
	return out
}
