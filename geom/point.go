// Package geom implements the 2D (angular, radial) geometry collaborators
// the ray tracer depends on: point-in-polygon membership, segment
// intersection, great-circle-chord distance, radial grid construction, and
// a spatial index used to shortlist candidate regions.
package geom

// Point is a location in (θ, r) space: θ in degrees, r in km.
type Point struct {
	Theta, Radius float64
}

// BBox is an axis-aligned bounding box in (θ, r) space.
type BBox struct {
	ThetaMin, ThetaMax, RadiusMin, RadiusMax float64
}

// Contains reports whether p lies within b, inclusive of the boundary.
func (b BBox) Contains(p Point) bool {
	return p.Theta >= b.ThetaMin && p.Theta <= b.ThetaMax &&
		p.Radius >= b.RadiusMin && p.Radius <= b.RadiusMax
}

// BoundingBox computes the axis-aligned bounding box of a polyline/polygon.
func BoundingBox(poly []Point) BBox {
	b := BBox{poly[0].Theta, poly[0].Theta, poly[0].Radius, poly[0].Radius}
	for _, p := range poly[1:] {
		if p.Theta < b.ThetaMin {
			b.ThetaMin = p.Theta
		}
		if p.Theta > b.ThetaMax {
			b.ThetaMax = p.Theta
		}
		if p.Radius < b.RadiusMin {
			b.RadiusMin = p.Radius
		}
		if p.Radius > b.RadiusMax {
			b.RadiusMax = p.Radius
		}
	}
	return b
}
