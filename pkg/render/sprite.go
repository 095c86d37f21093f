package render

import (
	"fmt"

	"gocv.io/x/gocv"
)

// LoadSprite decodes the overlay sprite once at startup. The alpha
// channel is kept when the file has one (IMReadUnchanged) so the
// renderer can mask the cat face onto the frame.
func LoadSprite(path string) (gocv.Mat, error) {
	mat := gocv.IMRead(path, gocv.IMReadUnchanged)
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("sprite decode failed: %s", path)
	}
	return mat, nil
}
