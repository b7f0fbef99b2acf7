package sapling

import "math"

// identityTransform is the identity affine matrix [a, b, c, d, tx, ty].
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// spriteTransform computes the sprite's affine matrix [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
func spriteTransform(s *Sprite) [6]float64 {
	sin, cos := math.Sincos(s.Rotation)
	a := cos * s.ScaleX
	b := sin * s.ScaleX
	c := -sin * s.ScaleY
	d := cos * s.ScaleY
	// Pivot is applied before scale, so it is scaled and rotated too.
	tx := -(a*s.PivotX + c*s.PivotY)
	ty := -(b*s.PivotX + d*s.PivotY)
	return [6]float64{a, b, c, d, tx + s.X, ty + s.Y}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	inv := 1.0 / det
	a := m[3] * inv
	b := -m[1] * inv
	c := -m[2] * inv
	d := m[0] * inv
	return [6]float64{a, b, c, d, -(a*m[4] + c*m[5]), -(b*m[4] + d*m[5])}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// --- Transform property setters ---

// SetPosition sets the sprite's X and Y.
func (s *Sprite) SetPosition(x, y float64) {
	s.X, s.Y = x, y
	s.dirty = true
}

// SetScale sets ScaleX and ScaleY.
func (s *Sprite) SetScale(sx, sy float64) {
	s.ScaleX, s.ScaleY = sx, sy
	s.dirty = true
}

// SetRotation sets the rotation in radians.
func (s *Sprite) SetRotation(r float64) {
	s.Rotation = r
	s.dirty = true
}

// SetPivot sets the pivot in image pixels.
func (s *Sprite) SetPivot(px, py float64) {
	s.PivotX, s.PivotY = px, py
	s.dirty = true
}

// MarkDirty forces the transform to be recomputed on the next Draw.
// Call it after setting transform fields directly.
func (s *Sprite) MarkDirty() {
	s.dirty = true
}

// --- Coordinate conversion ---

// LocalToScreen converts a point in image pixels to screen coordinates.
func (s *Sprite) LocalToScreen(lx, ly float64) (float64, float64) {
	return transformPoint(s.transform(), lx, ly)
}

// ScreenToLocal converts a screen point to image pixels.
func (s *Sprite) ScreenToLocal(sx, sy float64) (float64, float64) {
	return transformPoint(invertAffine(s.transform()), sx, sy)
}
