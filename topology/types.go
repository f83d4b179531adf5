package topology

import "github.com/elidrissi/taxiway/graphmodel"

// Coordinate is a single projected planar point, in meters, under whatever
// metric CRS the caller's geo loader already reprojected to. topology never
// reprojects; it only consumes coordinates in this form (spec.md §6).
type Coordinate struct {
	X, Y float64
}

// PointFeature is a single semantic point to ingest: a stand, runway point,
// network point, or any other categorized location. Category values
// {StandPoint, RunwayPoint, NetworkPoint} participate in proximity
// stitching; any other category is stored but never stitched.
type PointFeature struct {
	Category graphmodel.Category
	X, Y     float64
	Lon, Lat *float64
	Props    map[string]interface{}
}

// PolylineFeature is a single road segment to ingest: an ordered list of
// vertices of a given road type. Only the first and last vertex become
// graph nodes (endpoint coalescing, spec.md §4.1); the edge length is the
// planar length of the full polyline.
type PolylineFeature struct {
	Type     graphmodel.EdgeType
	Vertices []Coordinate
	Props    map[string]interface{}
}

// stitchableCategories names the point categories proximity stitching
// considers. Anything else is ingested but left unstitched.
var stitchableCategories = map[graphmodel.Category]bool{
	graphmodel.CategoryStand:   true,
	graphmodel.CategoryRunway:  true,
	graphmodel.CategoryNetwork: true,
}
