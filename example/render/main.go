// Command render stretches a 9-Patch image to a given size and writes the
// result as PNG.
//
//	render -in button.9.png -width 300 -height 80 -out button.png
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"git.sr.ht/~gioverse/stretch/ninepatch"
)

var (
	in      string
	out     string
	width   int
	height  int
	verbose bool
)

func init() {
	flag.StringVar(&in, "in", "", "9-Patch source image (png, jpeg, gif, bmp or tiff)")
	flag.StringVar(&out, "out", "-", "destination PNG, - for stdout")
	flag.IntVar(&width, "width", 0, "target width in pixels, clamped to the interior width")
	flag.IntVar(&height, "height", 0, "target height in pixels, clamped to the interior height")
	flag.BoolVar(&verbose, "v", false, "log rendering details to stderr")
}

func main() {
	flag.Parse()
	if verbose {
		ninepatch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if in == "" {
		flag.Usage()
		os.Exit(2)
	}
	src, err := load(in)
	if err != nil {
		log.Fatalf("loading source: %v", err)
	}
	if err := save(out, src, width, height); err != nil {
		if errors.Is(err, ninepatch.ErrDegenerateStretch) {
			log.Printf("hint: the image has no stretch markers along the requested axis")
		}
		log.Fatalf("rendering: %v", err)
	}
}

// load and decode an image from disk.
func load(path string) (*ninepatch.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	ninepatch.Logger().Debug("decoded source", "path", path, "format", format, "size", img.Bounds().Size())
	return ninepatch.FromImage(img), nil
}

// save renders src and writes the PNG to path, or to stdout for "-". Nothing
// is written unless rendering succeeds.
func save(path string, src *ninepatch.Bitmap, width, height int) error {
	var buf bytes.Buffer
	if err := render(&buf, src, width, height); err != nil {
		return err
	}
	if path == "-" {
		_, err := buf.WriteTo(os.Stdout)
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

// render src at width x height and encode the result as PNG.
func render(w io.Writer, src *ninepatch.Bitmap, width, height int) error {
	np, err := ninepatch.New(src)
	if err != nil {
		return err
	}
	dst, err := np.SizeOf(width, height)
	if err != nil {
		return err
	}
	return png.Encode(w, dst.ToNRGBA())
}
