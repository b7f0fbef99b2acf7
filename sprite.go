package sapling

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is the 2-D drawable: an image placed with a local transform and
// tinted by Color and Alpha. The transform is relative to the screen; sprites
// do not inherit transforms from ancestor nodes.
type Sprite struct {
	// Image is drawn as-is. When nil, WhitePixel is drawn instead so the
	// sprite renders as a ScaleX by ScaleY rectangle.
	Image *ebiten.Image

	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	Alpha     float64
	Color     Color
	BlendMode BlendMode
	Visible   bool

	matrix [6]float64
	dirty  bool
	opts   ebiten.DrawImageOptions
}

// NewSprite creates a visible, untinted sprite at the origin with unit scale.
func NewSprite(img *ebiten.Image) *Sprite {
	return &Sprite{
		Image:   img,
		ScaleX:  1,
		ScaleY:  1,
		Alpha:   1,
		Color:   ColorWhite,
		Visible: true,
		dirty:   true,
	}
}

// SetAlpha sets the opacity multiplier.
func (s *Sprite) SetAlpha(a float64) {
	s.Alpha = a
}

// transform returns the cached affine matrix, recomputing it when dirty.
func (s *Sprite) transform() [6]float64 {
	if s.dirty {
		s.matrix = spriteTransform(s)
		s.dirty = false
	}
	return s.matrix
}

// geoM converts the sprite transform to an ebiten.GeoM.
func (s *Sprite) geoM() ebiten.GeoM {
	m := s.transform()
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// Draw implements Drawable.
func (s *Sprite) Draw(dst *ebiten.Image) {
	if !s.Visible || s.Alpha <= 0 {
		return
	}
	img := s.Image
	if img == nil {
		img = WhitePixel
	}
	s.opts.GeoM = s.geoM()
	s.opts.ColorScale.Reset()
	a := float32(s.Color.A * s.Alpha)
	// ColorScale expects premultiplied values.
	s.opts.ColorScale.Scale(float32(s.Color.R)*a, float32(s.Color.G)*a, float32(s.Color.B)*a, a)
	s.opts.Blend = s.BlendMode.EbitenBlend()
	dst.DrawImage(img, &s.opts)
}

// Bounds returns the sprite's axis-aligned bounding box in screen space.
func (s *Sprite) Bounds() (minX, minY, maxX, maxY float64) {
	w, h := 1.0, 1.0
	if s.Image != nil {
		b := s.Image.Bounds()
		w, h = float64(b.Dx()), float64(b.Dy())
	}
	m := s.transform()
	corners := [4][2]float64{{0, 0}, {w, 0}, {0, h}, {w, h}}
	for i, c := range corners {
		x, y := transformPoint(m, c[0], c[1])
		if i == 0 {
			minX, maxX, minY, maxY = x, x, y, y
			continue
		}
		minX, maxX = min(minX, x), max(maxX, x)
		minY, maxY = min(minY, y), max(maxY, y)
	}
	return minX, minY, maxX, maxY
}

// Contains reports whether the screen point lies on the sprite.
func (s *Sprite) Contains(x, y float64) bool {
	w, h := 1.0, 1.0
	if s.Image != nil {
		b := s.Image.Bounds()
		w, h = float64(b.Dx()), float64(b.Dy())
	}
	lx, ly := s.ScreenToLocal(x, y)
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}
