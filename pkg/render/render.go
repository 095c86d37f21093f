// Package render draws overlay instructions and tap animations onto a
// camera frame. It is the only package that touches drawing primitives;
// pkg/overlay and pkg/anim just emit data for it.
package render

import (
	"image"
	"image/color"
	"math"

	"gocv.io/x/gocv"

	"github.com/AdiwangCC/face-camera-cat-demo/internal/log"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/anim"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/overlay"
)

var (
	outlineColor = color.RGBA{R: 80, G: 220, B: 100}
	rippleColor  = color.RGBA{R: 255, G: 255, B: 255}
)

// Renderer composites overlays onto frames. Missing sprite degrades to
// outline-only rendering; geometry and animation are unaffected.
type Renderer struct {
	sprite    gocv.Mat
	hasSprite bool
}

// New creates a renderer, loading the sprite from spritePath. A sprite
// that fails to decode disables sprite rendering but is not an error.
func New(spritePath string) *Renderer {
	r := &Renderer{}

	sprite, err := LoadSprite(spritePath)
	if err != nil {
		log.Warn("sprite unavailable, drawing outlines only", "error", err)
		return r
	}

	r.sprite = sprite
	r.hasSprite = true
	return r
}

// HasSprite reports whether sprite rendering is enabled.
func (r *Renderer) HasSprite() bool {
	return r.hasSprite
}

// Draw renders one frame: outline boxes, sprites, then the tap ripple.
func (r *Renderer) Draw(canvas *gocv.Mat, instrs []overlay.DrawInstruction, st anim.State) {
	for _, di := range instrs {
		r.drawOutline(canvas, di)

		opacity := di.SpriteOpacity * st.SpriteOpacity
		if r.hasSprite && opacity > 0 {
			r.drawSprite(canvas, di, opacity)
		}
	}

	if st.RippleActive {
		drawRipple(canvas, st.Ripple)
	}
}

// Close releases the sprite.
func (r *Renderer) Close() {
	if r.hasSprite {
		r.sprite.Close()
		r.hasSprite = false
	}
}

func (r *Renderer) drawOutline(canvas *gocv.Mat, di overlay.DrawInstruction) {
	corners := di.Corners()
	for i := range corners {
		a := corners[i]
		b := corners[(i+1)%4]
		gocv.Line(canvas,
			image.Pt(int(a.X), int(a.Y)),
			image.Pt(int(b.X), int(b.Y)),
			outlineColor, 2)
	}
}

func (r *Renderer) drawSprite(canvas *gocv.Mat, di overlay.DrawInstruction, opacity float64) {
	w := int(di.SpriteHalfWidth * 2)
	h := int(di.SpriteHalfHeight * 2)
	if w < 2 || h < 2 {
		return
	}

	resized := gocv.NewMat()
	defer resized.Close()
	gocv.Resize(r.sprite, &resized, image.Pt(w, h), 0, 0, gocv.InterpolationLinear)

	// OpenCV's rotation matrix treats positive angles as
	// counterclockwise on screen, opposite to the instruction's
	// image-space convention.
	angleDeg := -di.RotationRadians * 180 / math.Pi
	rot := gocv.GetRotationMatrix2D(image.Pt(w/2, h/2), angleDeg, 1.0)
	defer rot.Close()

	warped := gocv.NewMat()
	defer warped.Close()
	gocv.WarpAffine(resized, &warped, rot, image.Pt(w, h))

	// Clip placement to the canvas.
	dst := image.Rect(
		int(di.Center.X)-w/2,
		int(di.Center.Y)-h/2,
		int(di.Center.X)-w/2+w,
		int(di.Center.Y)-h/2+h,
	)
	bounds := image.Rect(0, 0, canvas.Cols(), canvas.Rows())
	clipped := dst.Intersect(bounds)
	if clipped.Empty() {
		return
	}
	src := clipped.Sub(dst.Min)

	roi := canvas.Region(clipped)
	defer roi.Close()
	patch := warped.Region(src)
	defer patch.Close()

	blit(&roi, patch, opacity)
}

// blit copies patch onto roi, honoring the patch alpha channel when
// present and blending by opacity when below 1.
func blit(roi *gocv.Mat, patch gocv.Mat, opacity float64) {
	if patch.Channels() < 4 {
		if opacity >= 1 {
			patch.CopyTo(roi)
			return
		}
		gocv.AddWeighted(patch, opacity, *roi, 1-opacity, 0, roi)
		return
	}

	channels := gocv.Split(patch)
	defer func() {
		for i := range channels {
			channels[i].Close()
		}
	}()

	bgr := gocv.NewMat()
	defer bgr.Close()
	gocv.Merge(channels[:3], &bgr)
	mask := channels[3]

	if opacity >= 1 {
		bgr.CopyToWithMask(roi, mask)
		return
	}

	blended := gocv.NewMat()
	defer blended.Close()
	gocv.AddWeighted(bgr, opacity, *roi, 1-opacity, 0, &blended)
	blended.CopyToWithMask(roi, mask)
}

func drawRipple(canvas *gocv.Mat, rp anim.Ripple) {
	radius := int(rp.Radius())
	if radius < 1 {
		return
	}

	// Fake alpha by dimming the stroke as the ripple fades.
	c := rippleColor
	c.R = uint8(float64(c.R) * rp.Opacity())
	c.G = uint8(float64(c.G) * rp.Opacity())
	c.B = uint8(float64(c.B) * rp.Opacity())

	gocv.Circle(canvas,
		image.Pt(int(rp.Origin.X), int(rp.Origin.Y)),
		radius, c, 3)
}
