// Package session owns the resources of one live overlay session: the
// camera source, the face detector, the renderer and the animation state.
// Resources are acquired in New and released in Close; nothing here
// relies on object-lifecycle hooks from a UI framework.
package session

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"gocv.io/x/gocv"

	"github.com/AdiwangCC/face-camera-cat-demo/internal/log"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/anim"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/camera"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/debug"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/detect"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/overlay"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/render"
)

// result is one completed detection pass. It is swapped in whole so the
// render path always sees a fully-consistent detection list.
type result struct {
	dets   []detect.Detection
	width  int
	height int
}

// Session drives the per-frame pipeline:
// camera frame -> detector (async, at most one in flight) -> geometry ->
// animator -> renderer. Update is meant to be called from a single host
// loop; only the detection goroutine runs concurrently with it.
type Session struct {
	id       string
	cfg      camera.Config
	source   camera.Source
	detector detect.Detector
	renderer *render.Renderer
	animator *anim.Animator
	engine   *overlay.Engine

	frame gocv.Mat

	// inFlight is the single-slot guard: a frame arriving while a
	// detection is pending is dropped for detection, never queued.
	inFlight atomic.Bool
	latest   atomic.Pointer[result]

	// gen invalidates late detection results after Close.
	gen    atomic.Uint64
	closed atomic.Bool

	misses atomic.Uint32
}

// New creates a session around already-acquired collaborators. The
// session takes ownership: Close releases all of them.
func New(cfg camera.Config, source camera.Source, detector detect.Detector, renderer *render.Renderer) *Session {
	s := &Session{
		id:       uuid.NewString(),
		cfg:      cfg,
		source:   source,
		detector: detector,
		renderer: renderer,
		animator: anim.New(),
		engine:   overlay.NewEngine(overlay.DefaultParams()),
		frame:    gocv.NewMat(),
	}

	log.Info("session started",
		"session", s.id,
		"device", cfg.DeviceID,
		"mirrored", cfg.Mirrored,
		"resolution", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height))

	return s
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string {
	return s.id
}

// Engine exposes the overlay engine for runtime parameter tuning.
func (s *Session) Engine() *overlay.Engine {
	return s.engine
}

// Frame returns the most recently rendered frame. Valid until the next
// Update call.
func (s *Session) Frame() *gocv.Mat {
	return &s.frame
}

// Tap feeds a tap at canvas coordinates into the animator. Must be
// called from the host loop thread, like Update.
func (s *Session) Tap(x, y float64, now time.Time) {
	s.animator.Tap(overlay.Point{X: x, Y: y}, now)
	debug.OverlayLog("💥 tap at (%.0f, %.0f)\n", x, y)
}

// Update runs one frame of the pipeline. A camera read failure is
// returned to the caller and is terminal; detection failures are
// absorbed here and only logged.
func (s *Session) Update(now time.Time) error {
	if s.closed.Load() {
		return fmt.Errorf("session %s is closed", s.id)
	}

	frame, err := s.source.Read(&s.frame)
	if err != nil {
		return fmt.Errorf("camera: %w", err)
	}

	s.maybeDetect(frame)

	var instrs []overlay.DrawInstruction
	if res := s.latest.Load(); res != nil {
		fc := overlay.FrameContext{
			SourceWidth:  float64(res.width),
			SourceHeight: float64(res.height),
			CanvasWidth:  float64(frame.Width),
			CanvasHeight: float64(frame.Height),
			Mirrored:     s.cfg.Mirrored,
		}
		instrs = s.engine.Compute(res.dets, fc)
	}

	st := s.animator.Tick(now)
	s.renderer.Draw(&s.frame, instrs, st)

	return nil
}

// maybeDetect dispatches an async detection for this frame unless one
// is already pending (drop-newest-if-busy backpressure).
func (s *Session) maybeDetect(frame camera.Frame) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return
	}

	jpeg, err := camera.EncodeJPEG(s.frame, s.cfg.Quality)
	if err != nil {
		s.inFlight.Store(false)
		log.Warn("frame encode failed", "session", s.id, "error", err)
		return
	}

	go s.runDetection(jpeg, frame.Width, frame.Height, s.gen.Load())
}

func (s *Session) runDetection(jpeg []byte, width, height int, gen uint64) {
	defer s.inFlight.Store(false)

	dets, err := s.detector.Detect(jpeg)
	if err != nil {
		// Treat as "no faces" for this frame only; next frame
		// dispatches normally.
		dets = nil
		if s.misses.Add(1) == 5 {
			log.Warn("detection failing", "session", s.id, "error", err)
		}
	} else {
		s.misses.Store(0)
	}

	// A result from before teardown must not resurrect state.
	if gen != s.gen.Load() {
		return
	}

	s.latest.Store(&result{dets: dets, width: width, height: height})
}

// Detections returns the latest completed detection list, for
// diagnostics. May be nil before the first detection completes.
func (s *Session) Detections() []detect.Detection {
	if res := s.latest.Load(); res != nil {
		return res.dets
	}
	return nil
}

// Close tears the session down: late detection results are discarded,
// the animator stops, and all owned resources are released. Safe to
// call once; subsequent Updates fail.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}

	s.gen.Add(1)
	s.animator.Reset()

	var firstErr error
	if err := s.source.Close(); err != nil {
		firstErr = err
	}
	if err := s.detector.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	s.renderer.Close()
	s.frame.Close()

	log.Info("session closed", "session", s.id)
	return firstErr
}
