package camera

import (
	"fmt"

	"gocv.io/x/gocv"
)

// Frame describes one captured frame. Pixel data lives in the Mat the
// caller passed to Read; Frame itself only carries metadata.
type Frame struct {
	Width  int
	Height int
	Seq    uint64
}

// Source supplies a sequence of camera frames.
type Source interface {
	// Read captures the next frame into dst and returns its metadata.
	Read(dst *gocv.Mat) (Frame, error)

	// Close stops streaming and releases the device.
	Close() error
}

// Webcam is a Source backed by a local capture device via gocv.
type Webcam struct {
	cfg Config
	cap *gocv.VideoCapture
	seq uint64
}

// OpenWebcam opens the configured capture device and applies the
// requested resolution and framerate. Failure here is terminal for the
// session: there is no automatic retry.
func OpenWebcam(cfg Config) (*Webcam, error) {
	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("camera config invalid: %v", errs)
	}

	vc, err := gocv.OpenVideoCapture(cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("open camera %d: %w", cfg.DeviceID, err)
	}

	// Best-effort: drivers may clamp or ignore these.
	vc.Set(gocv.VideoCaptureFrameWidth, float64(cfg.Width))
	vc.Set(gocv.VideoCaptureFrameHeight, float64(cfg.Height))
	vc.Set(gocv.VideoCaptureFPS, float64(cfg.Framerate))

	return &Webcam{cfg: cfg, cap: vc}, nil
}

// Config returns the configuration the webcam was opened with.
func (w *Webcam) Config() Config {
	return w.cfg
}

// Read captures the next frame into dst.
func (w *Webcam) Read(dst *gocv.Mat) (Frame, error) {
	if ok := w.cap.Read(dst); !ok {
		return Frame{}, fmt.Errorf("camera %d: read failed", w.cfg.DeviceID)
	}
	if dst.Empty() {
		return Frame{}, fmt.Errorf("camera %d: empty frame", w.cfg.DeviceID)
	}

	w.seq++
	return Frame{
		Width:  dst.Cols(),
		Height: dst.Rows(),
		Seq:    w.seq,
	}, nil
}

// Close releases the capture device.
func (w *Webcam) Close() error {
	return w.cap.Close()
}

// EncodeJPEG encodes a frame Mat to JPEG bytes for the detector handoff.
// The returned slice is an independent copy, safe to hand to a goroutine.
func EncodeJPEG(mat gocv.Mat, quality int) ([]byte, error) {
	buf, err := gocv.IMEncodeWithParams(gocv.JPEGFileExt, mat,
		[]int{gocv.IMWriteJpegQuality, quality})
	if err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	defer buf.Close()

	out := make([]byte, buf.Len())
	copy(out, buf.GetBytes())
	return out, nil
}
