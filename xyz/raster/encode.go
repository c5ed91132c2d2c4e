// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// Formats are the image encodings for rendered frames.
type Formats int32

const (
	PNG Formats = iota
	JPEG
)

// JPEGQuality is the quality used for JPEG frames.
var JPEGQuality = 85

func (f Formats) String() string {
	if f == JPEG {
		return "jpeg"
	}
	return "png"
}

// MimeType returns the mime type of the format.
func (f Formats) MimeType() string {
	return "image/" + f.String()
}

// Encoder returns the encoder for the format.
func (f Formats) Encoder() imgio.Encoder {
	if f == JPEG {
		return imgio.JPEGEncoder(JPEGQuality)
	}
	return imgio.PNGEncoder()
}

// FormatFromFilename returns the format implied by the extension.
func FormatFromFilename(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	}
	return PNG, fmt.Errorf("raster: unsupported image extension %q", filepath.Ext(filename))
}

// Encode writes the image to w in the given format.
func Encode(w io.Writer, img image.Image, format Formats) error {
	return format.Encoder()(w, img)
}

// Save saves the image to the file, with the format given by its extension.
func Save(img image.Image, filename string) error {
	f, err := FormatFromFilename(filename)
	if err != nil {
		return err
	}
	return imgio.Save(filename, img, f.Encoder())
}
