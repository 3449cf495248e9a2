package canvas

// Polyline defines a list of points in 2D space that form a polyline. If the last coordinate equals the first coordinate, we assume the polyline to close itself.
type Polyline struct {
	coords []Point
}

// PolylineFromPath returns a polyline for each subpath of the path. Closed subpaths repeat their first coordinate at the end.
func PolylineFromPath(p *Path) []*Polyline {
	polys := []*Polyline{}
	for _, sub := range p.Subpaths() {
		poly := &Polyline{sub.Coords()}
		if sub.Closed() {
			poly.Close()
		}
		polys = append(polys, poly)
	}
	return polys
}

// Close adds a new point equal to the first, closing the polyline.
func (p *Polyline) Close() *Polyline {
	if 0 < len(p.coords) {
		p.coords = append(p.coords, p.coords[0])
	}
	return p
}

// Closed returns true if the last point coincides with the first.
func (p *Polyline) Closed() bool {
	return 1 < len(p.coords) && p.coords[0].Equals(p.coords[len(p.coords)-1])
}

// Coords returns the list of coordinates of the polyline.
func (p *Polyline) Coords() []Point {
	return p.coords
}
