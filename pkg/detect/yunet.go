package detect

import (
	"fmt"
	"image"
	"math"
	"os"
	"sync"

	"gocv.io/x/gocv"

	"github.com/AdiwangCC/face-camera-cat-demo/pkg/debug"
)

// YuNetDetector uses OpenCV's FaceDetectorYN for face detection
type YuNetDetector struct {
	detector gocv.FaceDetectorYN
	config   Config
	mu       sync.Mutex // Protects inference
}

// NewYuNet creates a new YuNet face detector using GoCV's built-in FaceDetectorYN
func NewYuNet(cfg Config) (*YuNetDetector, error) {
	// Check if model file exists first
	if _, err := os.Stat(cfg.ModelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("model file not found: %s", cfg.ModelPath)
	}

	// Create FaceDetectorYN with initial size (will be updated per-image)
	detector := gocv.NewFaceDetectorYNWithParams(
		cfg.ModelPath,
		"", // No config file needed for ONNX
		image.Pt(cfg.InputWidth, cfg.InputHeight), // Initial input size
		float32(cfg.ConfidenceThresh),             // Score threshold
		float32(cfg.NMSThresh),                    // NMS threshold
		5000,                                      // Top K
		int(gocv.NetBackendDefault),               // Backend
		int(gocv.NetTargetCPU),                    // Target
	)

	return &YuNetDetector{
		detector: detector,
		config:   cfg,
	}, nil
}

// Detect finds faces in the JPEG image.
// Boxes are returned in source-image pixel coordinates; yaw and roll are
// estimated from the five facial landmarks YuNet emits per face.
func (d *YuNetDetector) Detect(jpeg []byte) ([]Detection, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Decode JPEG to Mat
	img, err := gocv.IMDecode(jpeg, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	defer img.Close()

	if img.Empty() {
		return nil, fmt.Errorf("empty image")
	}

	// Update detector input size to match image
	d.detector.SetInputSize(image.Pt(img.Cols(), img.Rows()))

	// Prepare output matrix for faces
	faces := gocv.NewMat()
	defer faces.Close()

	// Run detection
	d.detector.Detect(img, &faces)

	// Parse results
	var detections []Detection
	for r := 0; r < faces.Rows(); r++ {
		// YuNet output format (15 columns):
		// 0-3: x, y, w, h (bounding box in pixels)
		// 4-13: 5 facial landmarks (x,y pairs):
		//       right eye, left eye, nose tip, right mouth, left mouth
		// 14: face score
		x := float64(faces.GetFloatAt(r, 0))
		y := float64(faces.GetFloatAt(r, 1))
		w := float64(faces.GetFloatAt(r, 2))
		h := float64(faces.GetFloatAt(r, 3))
		score := float64(faces.GetFloatAt(r, 14))

		yaw, roll := estimatePose(faces, r, d.config.YawScaleDegrees)

		detections = append(detections, Detection{
			Box: Rect{
				Left:   x,
				Top:    y,
				Right:  x + w,
				Bottom: y + h,
			},
			YawDegrees:  yaw,
			RollDegrees: roll,
			Confidence:  score,
		})
	}

	if len(detections) > 0 {
		debug.OverlayLog("👁️  YuNet found %d face(s)\n", len(detections))
	}

	return detections, nil
}

// estimatePose derives head yaw and roll from the landmark columns of a
// YuNet output row. Roll comes from the inter-eye line; yaw from the nose
// offset against the eye midpoint, normalized by inter-eye distance.
// These are cheap 2D approximations, not a 3D reprojection.
func estimatePose(faces gocv.Mat, row int, yawScale float64) (yaw, roll float64) {
	rightEyeX := float64(faces.GetFloatAt(row, 4))
	rightEyeY := float64(faces.GetFloatAt(row, 5))
	leftEyeX := float64(faces.GetFloatAt(row, 6))
	leftEyeY := float64(faces.GetFloatAt(row, 7))
	noseX := float64(faces.GetFloatAt(row, 8))

	eyeDist := math.Hypot(leftEyeX-rightEyeX, leftEyeY-rightEyeY)
	if eyeDist < 1 {
		// Landmarks collapsed (tiny or degenerate face), keep defaults
		return 0, 0
	}

	roll = math.Atan2(leftEyeY-rightEyeY, leftEyeX-rightEyeX) * 180 / math.Pi

	// Nose drifts toward the far eye as the head turns
	offset := (noseX - (rightEyeX+leftEyeX)/2) / eyeDist
	if offset > 1 {
		offset = 1
	}
	if offset < -1 {
		offset = -1
	}
	yaw = offset * yawScale

	return yaw, roll
}

// Close releases the detector resources
func (d *YuNetDetector) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.detector.Close()
	return nil
}
