package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/junkfoodwar/assets"
)

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

// LoadImage loads an image from assets or the filesystem and caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("render: empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, err := loadImageFromAssetsOrFS(key)
	if err != nil {
		return nil, err
	}
	RegisterImage(key, img)
	return img, nil
}

// ForgetImages drops the cache so edited files are read again.
func ForgetImages() {
	images = map[string]*ebiten.Image{}
}

func loadImageFromAssetsOrFS(path string) (*ebiten.Image, error) {
	tried := []string{filepath.Join(assets.Dir, path), path}
	for _, p := range tried {
		if b, err := os.ReadFile(p); err == nil {
			if im, _, err := image.Decode(bytes.NewReader(b)); err == nil {
				return ebiten.NewImageFromImage(im), nil
			}
		}
	}
	if img, err := assets.LoadImage(path); err == nil {
		return img, nil
	}
	return nil, fmt.Errorf("render: failed to load image %s", path)
}

var solid *ebiten.Image

// solidPixel is a 1x1 white image scaled and tinted for shapes without art.
func solidPixel() *ebiten.Image {
	if solid == nil {
		solid = ebiten.NewImage(1, 1)
		solid.Fill(color.White)
	}
	return solid
}
