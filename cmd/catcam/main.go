// Catcam - cat face overlay for the front camera
//
// Detects faces in the live camera stream and draws a cat sprite over
// them. Click the window for a ripple and a sprite fade; ESC quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"gocv.io/x/gocv"

	"github.com/AdiwangCC/face-camera-cat-demo/internal/config"
	"github.com/AdiwangCC/face-camera-cat-demo/internal/log"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/camera"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/debug"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/detect"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/render"
	"github.com/AdiwangCC/face-camera-cat-demo/pkg/session"
)

// cv::EVENT_LBUTTONDOWN
const mouseLButtonDown = 1

func main() {
	debugFlag := flag.Bool("debug", false, "enable debug logging")
	debugOverlay := flag.Bool("debug-overlay", false, "enable verbose per-frame overlay logs")
	lowLatency := flag.Bool("low-latency", false, "capture at 640x480")
	flag.Parse()

	debug.Enabled = *debugFlag
	debug.Overlay = *debugOverlay

	// .env is optional; env vars win either way.
	_ = godotenv.Load()
	log.Init(config.LogLevel())

	fmt.Println("🐱 Catcam")
	fmt.Println("=========")

	cfg := camera.DefaultConfig()
	if *lowLatency {
		cfg = camera.LowLatencyConfig()
	}
	cfg.DeviceID = config.CameraDevice()
	cfg.Mirrored = config.Mirrored()

	source, err := camera.OpenWebcam(cfg)
	if err != nil {
		// No usable camera is terminal, no retry.
		fmt.Printf("❌ Camera unavailable: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("📷 Camera %d: %dx%d @ %d fps\n", cfg.DeviceID, cfg.Width, cfg.Height, cfg.Framerate)

	detCfg := detect.DefaultConfig()
	detCfg.ModelPath = config.ModelPath()
	detector, err := detect.NewYuNet(detCfg)
	if err != nil {
		source.Close()
		fmt.Printf("❌ Detector unavailable: %v\n", err)
		fmt.Println("   Download the YuNet model and set YUNET_MODEL, or place it at", config.DefaultModelPath)
		os.Exit(1)
	}
	fmt.Println("👁️  Face detector ready")

	renderer := render.New(config.SpritePath())
	if renderer.HasSprite() {
		fmt.Println("🎭 Cat sprite loaded")
	} else {
		fmt.Println("🎭 No sprite, drawing outlines only")
	}

	sess := session.New(cfg, source, detector, renderer)
	defer sess.Close()

	// Handle Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n👋 Goodbye!")
		cancel()
	}()

	window := gocv.NewWindow("catcam")
	defer window.Close()

	// HighGUI delivers mouse events during WaitKey on this same
	// thread, so the tap lands between Updates, never during one.
	window.SetMouseHandler(func(event int, x int, y int, flags int, userdata interface{}) {
		if event == mouseLButtonDown {
			sess.Tap(float64(x), float64(y), time.Now())
		}
	}, nil)

	fmt.Println("🔄 Running (click for ripple, ESC to quit)")

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := sess.Update(time.Now()); err != nil {
			log.Error("session stopped", "error", err)
			fmt.Printf("❌ %v\n", err)
			return
		}

		window.IMShow(*sess.Frame())
		if key := window.WaitKey(1); key == 27 { // ESC
			return
		}
	}
}
