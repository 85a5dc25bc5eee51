package ontology

// Point is a single coordinate in an edge view's polyline.
type Point struct {
	X, Y int
}

// ViewKind distinguishes an entity's rectangular placement from a
// relation/generalization's polyline placement.
type ViewKind struct{ value string }

var (
	EntityView = ViewKind{"entity"}
	EdgeView   = ViewKind{"edge"}
	SetView    = ViewKind{"set"}
)

// View is a per-diagram placement of one graph element. Entity views carry
// a rectangle (X, Y, Width, Height); relation/generalization views carry a
// polyline (Points) plus the source/target view ids they attach to;
// generalization-set views carry a rectangle plus the rendered constraint
// string (e.g. "{disjoint, complete}").
type View struct {
	ID        string
	DiagramID string
	ElementID string
	Kind      ViewKind

	X, Y, Width, Height int
	Value               string

	Points       []Point
	SourceViewID string
	TargetViewID string
}

// invert swaps a relation view's source/target endpoints and reverses its
// point list, correcting a view whose source/target were loaded backwards
// (spec §4.1: inverted relation views are detected and corrected on load).
func (v *View) invert() {
	v.SourceViewID, v.TargetViewID = v.TargetViewID, v.SourceViewID
	for i, j := 0, len(v.Points)-1; i < j; i, j = i+1, j-1 {
		v.Points[i], v.Points[j] = v.Points[j], v.Points[i]
	}
}

// Invert exposes invert to adapters outside the ontology package (canonical
// load's view-direction repair pass, spec §4.1).
func (v *View) Invert() { v.invert() }

// rewriteEndpoint replaces whichever endpoint currently equals oldViewID
// with newViewID and rewrites the corresponding end of the polyline to
// newPoint, used when a migrated relation's endpoint entity changes (spec
// §9: "View coordinate mutations").
func (v *View) rewriteEndpoint(oldViewID, newViewID string, newPoint Point) {
	switch oldViewID {
	case v.SourceViewID:
		v.SourceViewID = newViewID
		if len(v.Points) > 0 {
			v.Points[0] = newPoint
		}
	case v.TargetViewID:
		v.TargetViewID = newViewID
		if len(v.Points) > 0 {
			v.Points[len(v.Points)-1] = newPoint
		}
	}
}

// degenerate reports whether the polyline has collapsed to a single
// coincident point pair, which would render as an invisible edge.
func (v *View) degenerate() bool {
	return len(v.Points) < 2 || (v.Points[0] == v.Points[len(v.Points)-1])
}

// expandDetour replaces a degenerate two-point polyline with a four-corner
// detour sized by width/height, so the edge remains visible (spec §9).
func (v *View) expandDetour(width, height int) {
	if len(v.Points) == 0 {
		return
	}
	origin := v.Points[0]
	v.Points = []Point{
		origin,
		{origin.X + width, origin.Y},
		{origin.X + width, origin.Y + height},
		{origin.X, origin.Y + height},
	}
}

// Diagram owns the set of view ids placed on it.
type Diagram struct {
	ID      string
	Name    string
	ViewIDs map[string]struct{}
}

func newDiagram(id string) *Diagram {
	return &Diagram{ID: id, ViewIDs: make(map[string]struct{})}
}

// NewDiagram creates an empty diagram with the given id, for adapters that
// build diagrams outside the ontology package (e.g. canonical load).
func NewDiagram(id string) *Diagram { return newDiagram(id) }

func (d *Diagram) addView(viewID string) { d.ViewIDs[viewID] = struct{}{} }

func (d *Diagram) removeView(viewID string) { delete(d.ViewIDs, viewID) }

func (d *Diagram) hasView(viewID string) bool {
	_, ok := d.ViewIDs[viewID]
	return ok
}
