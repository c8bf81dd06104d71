package gradient

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/disintegration/imaging"

	hueyerrors "github.com/alexisbeaulieu97/huey/pkg/errors"
)

// ImageFormat is a raster export format.
type ImageFormat string

const (
	FormatPNG  ImageFormat = "png"
	FormatJPEG ImageFormat = "jpeg"
	FormatWebP ImageFormat = "webp"
)

// JPEGQuality matches the default quality browsers use for canvas exports.
const JPEGQuality = 92

// ImageFormats lists the supported export formats.
func ImageFormats() []ImageFormat {
	return []ImageFormat{FormatPNG, FormatJPEG, FormatWebP}
}

// ParseImageFormat validates a format name. "jpg" is accepted for jpeg.
func ParseImageFormat(s string) (ImageFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	}
	return "", fmt.Errorf("unknown image format %q (want png, jpeg or webp)", s)
}

// MIME returns the media type of the format.
func (f ImageFormat) MIME() string { return "image/" + string(f) }

// Ext returns the file extension without the dot.
func (f ImageFormat) Ext() string { return string(f) }

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f ImageFormat) error {
	var err error
	switch f {
	case FormatPNG:
		err = imaging.Encode(w, img, imaging.PNG)
	case FormatJPEG:
		err = imaging.Encode(w, img, imaging.JPEG, imaging.JPEGQuality(JPEGQuality))
	case FormatWebP:
		err = nativewebp.Encode(w, img, nil)
	default:
		err = fmt.Errorf("unknown image format %q", f)
	}
	if err != nil {
		return hueyerrors.NewRenderError("encode "+string(f), err)
	}
	return nil
}

// RenderTo renders v and writes the encoded image to w.
func RenderTo(w io.Writer, v Value, width, height int, f ImageFormat) error {
	img, err := Render(v, width, height)
	if err != nil {
		return err
	}
	return Encode(w, img, f)
}

// ToImage renders v and returns it as a base64 data URI.
func ToImage(v Value, width, height int, f ImageFormat) (string, error) {
	var buf bytes.Buffer
	if err := RenderTo(&buf, v, width, height, f); err != nil {
		return "", err
	}
	return DataURI(f, buf.Bytes()), nil
}

// DataURI wraps encoded image bytes in a data URI.
func DataURI(f ImageFormat, data []byte) string {
	return "data:" + f.MIME() + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// DefaultFileName is the suggested download name for an export.
func DefaultFileName(width, height int, f ImageFormat) string {
	return fmt.Sprintf("gradient_%dx%d.%s", width, height, f.Ext())
}
