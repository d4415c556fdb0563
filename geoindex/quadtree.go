package geoindex

import (
	"math"

	"geohash-codec/models"
)

const (
	nodeCapacity = 4
	maxDepth     = 24
)

// Bounds is an axis-aligned rectangle, X being longitude and Y latitude.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// WorldBounds covers every valid coordinate.
var WorldBounds = Bounds{MinX: -180, MinY: -90, MaxX: 180, MaxY: 90}

// QuadtreeNode holds up to nodeCapacity locations until it splits into four
// quadrants. Nodes at maxDepth keep every location they receive.
type QuadtreeNode struct {
	Bounds    Bounds
	Locations []models.Location
	Children  [4]*QuadtreeNode
	depth     int
}

// Quadtree indexes locations by longitude (X) and latitude (Y).
type Quadtree struct {
	Root *QuadtreeNode
}

// NewQuadtree returns an empty tree covering bounds.
func NewQuadtree(bounds Bounds) *Quadtree {
	return &Quadtree{
		Root: &QuadtreeNode{Bounds: bounds},
	}
}

// Insert adds a location to the Quadtree. Locations outside the root bounds
// are dropped and reported as false.
func (qt *Quadtree) Insert(loc models.Location) bool {
	return qt.Root.insert(loc)
}

// insert stores loc in this node or in the first child quadrant that
// accepts it, so a location on a shared edge is kept once.
func (node *QuadtreeNode) insert(loc models.Location) bool {
	x, y := float64(loc.Longitude), float64(loc.Latitude)
	if !node.contains(x, y) {
		return false
	}
	if node.Children[0] == nil && (len(node.Locations) < nodeCapacity || node.depth >= maxDepth) {
		node.Locations = append(node.Locations, loc)
		return true
	}
	if node.Children[0] == nil {
		node.subdivide()
	}
	for i := 0; i < 4; i++ {
		if node.Children[i].insert(loc) {
			return true
		}
	}
	return false
}

// contains reports whether (x, y) lies in the node, edges included.
func (node *QuadtreeNode) contains(x, y float64) bool {
	return x >= node.Bounds.MinX && x <= node.Bounds.MaxX &&
		y >= node.Bounds.MinY && y <= node.Bounds.MaxY
}

// subdivide creates the SW, SE, NW and NE quadrants one level deeper.
func (node *QuadtreeNode) subdivide() {
	b := node.Bounds
	midX := (b.MinX + b.MaxX) / 2
	midY := (b.MinY + b.MaxY) / 2
	d := node.depth + 1
	node.Children[0] = &QuadtreeNode{Bounds: Bounds{b.MinX, b.MinY, midX, midY}, depth: d}
	node.Children[1] = &QuadtreeNode{Bounds: Bounds{midX, b.MinY, b.MaxX, midY}, depth: d}
	node.Children[2] = &QuadtreeNode{Bounds: Bounds{b.MinX, midY, midX, b.MaxY}, depth: d}
	node.Children[3] = &QuadtreeNode{Bounds: Bounds{midX, midY, b.MaxX, b.MaxY}, depth: d}
}

// SearchNearby returns the locations within radius degrees of (x, y).
func (qt *Quadtree) SearchNearby(x, y, radius float64) []models.Location {
	return qt.Root.searchNearby(x, y, radius)
}

// searchNearby skips subtrees the search circle cannot reach.
func (node *QuadtreeNode) searchNearby(x, y, radius float64) []models.Location {
	if !node.intersectsCircle(x, y, radius) {
		return nil
	}
	var result []models.Location
	for _, loc := range node.Locations {
		if distance(float64(loc.Longitude), float64(loc.Latitude), x, y) <= radius {
			result = append(result, loc)
		}
	}
	if node.Children[0] != nil {
		for i := 0; i < 4; i++ {
			result = append(result, node.Children[i].searchNearby(x, y, radius)...)
		}
	}
	return result
}

// intersectsCircle compares the radius with the distance from (x, y) to the
// closest point of the node.
func (node *QuadtreeNode) intersectsCircle(x, y, radius float64) bool {
	closestX := math.Max(node.Bounds.MinX, math.Min(x, node.Bounds.MaxX))
	closestY := math.Max(node.Bounds.MinY, math.Min(y, node.Bounds.MaxY))
	dx := closestX - x
	dy := closestY - y
	return (dx*dx + dy*dy) <= (radius * radius)
}

// distance is planar, in degrees.
func distance(x1, y1, x2, y2 float64) float64 {
	dx := x1 - x2
	dy := y1 - y2
	return math.Sqrt(dx*dx + dy*dy)
}
