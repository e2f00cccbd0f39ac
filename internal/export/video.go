package export

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/icza/mjpeg"
)

// Recorder appends frames to an MJPEG AVI file.
type Recorder struct {
	writer mjpeg.AviWriter
	buf    bytes.Buffer
	opts   jpeg.Options
}

// NewRecorder creates the output file. Width and height must match every
// frame added later.
func NewRecorder(path string, width, height, fps int) (*Recorder, error) {
	if fps <= 0 {
		fps = 10
	}
	writer, err := mjpeg.New(path, int32(width), int32(height), int32(fps))
	if err != nil {
		return nil, fmt.Errorf("creating video %s: %w", path, err)
	}
	return &Recorder{writer: writer, opts: jpeg.Options{Quality: 90}}, nil
}

// AddFrame JPEG-encodes the image and appends it to the video.
func (r *Recorder) AddFrame(img image.Image) error {
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &r.opts); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	if err := r.writer.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("adding frame: %w", err)
	}
	return nil
}

// Close finalizes the AVI index.
func (r *Recorder) Close() error {
	return r.writer.Close()
}
