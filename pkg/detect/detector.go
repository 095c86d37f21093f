// Package detect provides face detection using computer vision
package detect

// Rect is an axis-aligned bounding box in source-image pixel coordinates
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the box width in pixels
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the box height in pixels
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Center returns the center point of the box
func (r Rect) Center() (x, y float64) {
	return (r.Left + r.Right) / 2, (r.Top + r.Bottom) / 2
}

// Area returns the area of the bounding box
func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Detection represents a detected face in a single video frame
type Detection struct {
	Box Rect // Bounding box in source-image pixels

	// Head pose estimated from facial landmarks.
	// Yaw is left-right rotation around the vertical axis, positive when
	// the head turns toward the camera's right. Roll is in-plane tilt,
	// positive when the head tilts toward its left shoulder on screen.
	// Both default to 0 when landmarks are unusable.
	YawDegrees  float64
	RollDegrees float64

	Confidence float64 // Detection confidence (0-1)
}

// Detector is the interface for face detection backends
type Detector interface {
	// Detect finds faces in the image and returns their boxes and poses
	Detect(jpeg []byte) ([]Detection, error)

	// Close releases resources
	Close() error
}

// Config holds detector configuration
type Config struct {
	ModelPath        string  // Path to ONNX model
	ConfidenceThresh float64 // Minimum confidence (default 0.5)
	NMSThresh        float64 // Non-max suppression threshold
	InputWidth       int     // Model input width
	InputHeight      int     // Model input height
	YawScaleDegrees  float64 // Degrees of yaw per unit of normalized nose offset
}

// DefaultConfig returns production defaults for YuNet.
// Tuned to favor accuracy over speed.
func DefaultConfig() Config {
	return Config{
		ModelPath:        "models/face_detection_yunet.onnx",
		ConfidenceThresh: 0.5,
		NMSThresh:        0.3,
		InputWidth:       320,
		InputHeight:      320,
		YawScaleDegrees:  60,
	}
}

// FilterConfidence drops detections below the threshold.
// Order of the surviving detections is preserved.
func FilterConfidence(dets []Detection, min float64) []Detection {
	if len(dets) == 0 {
		return dets
	}

	out := dets[:0:0]
	for _, d := range dets {
		if d.Confidence >= min {
			out = append(out, d)
		}
	}
	return out
}
