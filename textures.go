package main

import (
	"fmt"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// TextureCache uploads decoded assets to the GPU on first use and keeps the
// most recently drawn textures. Evicted textures are deallocated.
type TextureCache struct {
	assets []Asset
	cache  *lru.Cache[string, *ebiten.Image]
}

// NewTextureCache creates a cache holding up to size textures
func NewTextureCache(assets []Asset, size int) *TextureCache {
	evict := func(key string, img *ebiten.Image) {
		debugLog("Cache EVICT: %s", key)
		if img != nil {
			img.Deallocate()
		}
	}
	cache, err := lru.NewWithEvict[string, *ebiten.Image](size, evict)
	if err != nil {
		log.Printf("Error: Failed to create LRU cache: %v", err)
		cache, _ = lru.NewWithEvict[string, *ebiten.Image](16, evict)
	}
	return &TextureCache{assets: assets, cache: cache}
}

func pageKey(index int) string {
	return fmt.Sprintf("page:%d", index)
}

func thumbnailKey(index, w, h int) string {
	return fmt.Sprintf("thumb:%d@%dx%d", index, w, h)
}

// Page returns the full-resolution texture of image index
func (c *TextureCache) Page(index int) *ebiten.Image {
	if index < 0 || index >= len(c.assets) {
		return nil
	}
	key := pageKey(index)
	if img, ok := c.cache.Get(key); ok {
		return img
	}
	img := ebiten.NewImageFromImage(c.assets[index].Image)
	c.cache.Add(key, img)
	debugLog("Cache MISS: %s (cache: %d items)", key, c.cache.Len())
	return img
}

// Thumbnail returns the rounded, cropped thumbnail of image index for a
// frame of the given size
func (c *TextureCache) Thumbnail(index int, size Size) *ebiten.Image {
	if index < 0 || index >= len(c.assets) {
		return nil
	}
	w, h := int(math.Round(size.W)), int(math.Round(size.H))
	if w <= 0 || h <= 0 {
		return nil
	}
	key := thumbnailKey(index, w, h)
	if img, ok := c.cache.Get(key); ok {
		return img
	}
	img := ebiten.NewImageFromImage(renderThumbnail(c.assets[index].Image, w, h, thumbCornerRadius))
	c.cache.Add(key, img)
	debugLog("Cache MISS: %s (cache: %d items)", key, c.cache.Len())
	return img
}

// Purge drops every texture
func (c *TextureCache) Purge() {
	c.cache.Purge()
}

func (c *TextureCache) Len() int { return c.cache.Len() }
