package main

import (
	"archive/zip"
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func writePNG(t *testing.T, path string, w, h int) {
	t.Helper()
	if err := os.WriteFile(path, pngBytes(t, w, h), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func writeZip(t *testing.T, path string, entries map[string][]byte, order []string) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create zip: %v", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	for _, name := range order {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("Failed to add %s: %v", name, err)
		}
		if _, err := w.Write(entries[name]); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("Failed to close zip: %v", err)
	}
}

func TestCollectImages(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"img10.png", "img2.png", "img1.png"} {
		writePNG(t, filepath.Join(dir, name), 4, 3)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Run("DirectoryNaturalOrder", func(t *testing.T) {
		images, err := collectImages([]string{dir}, SortNatural)
		if err != nil {
			t.Fatalf("collectImages: %v", err)
		}
		want := []string{
			filepath.Join(dir, "img1.png"),
			filepath.Join(dir, "img2.png"),
			filepath.Join(dir, "img10.png"),
		}
		if got := pathsToStrings(images); !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})

	t.Run("ExplicitFilesKeepOrder", func(t *testing.T) {
		args := []string{filepath.Join(dir, "img10.png"), filepath.Join(dir, "img1.png")}
		images, err := collectImages(args, SortNatural)
		if err != nil {
			t.Fatalf("collectImages: %v", err)
		}
		if got := pathsToStrings(images); !reflect.DeepEqual(got, args) {
			t.Errorf("Expected %v, got %v", args, got)
		}
	})

	t.Run("MissingPath", func(t *testing.T) {
		_, err := collectImages([]string{filepath.Join(dir, "nope.png")}, SortNatural)
		if !errors.Is(err, ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})
}

func TestLoadAssetsFromFilesAndZip(t *testing.T) {
	dir := t.TempDir()
	single := filepath.Join(dir, "cover.png")
	writePNG(t, single, 8, 6)

	archive := filepath.Join(dir, "book.zip")
	writeZip(t, archive, map[string][]byte{
		"p10.png":    pngBytes(t, 3, 5),
		"p2.png":     pngBytes(t, 2, 4),
		"readme.txt": []byte("hello"),
		"sub/":       nil,
	}, []string{"p10.png", "readme.txt", "sub/", "p2.png"})

	paths, err := collectImages([]string{single, archive}, SortNatural)
	if err != nil {
		t.Fatalf("collectImages: %v", err)
	}
	want := []string{single, archive + ":p2.png", archive + ":p10.png"}
	if got := pathsToStrings(paths); !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}

	assets, err := LoadAssets(paths)
	if err != nil {
		t.Fatalf("LoadAssets: %v", err)
	}
	wantSizes := []Size{{W: 8, H: 6}, {W: 2, H: 4}, {W: 3, H: 5}}
	if got := assetSizes(assets); !reflect.DeepEqual(got, wantSizes) {
		t.Errorf("Expected sizes %v, got %v", wantSizes, got)
	}
	if assets[1].Name != archive+":p2.png" {
		t.Errorf("Unexpected asset name %q", assets[1].Name)
	}

	t.Run("EntryOrder", func(t *testing.T) {
		paths, err := collectImages([]string{archive}, SortEntryOrder)
		if err != nil {
			t.Fatalf("collectImages: %v", err)
		}
		want := []string{archive + ":p10.png", archive + ":p2.png"}
		if got := pathsToStrings(paths); !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})
}

func TestLoadAssetsErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("Empty", func(t *testing.T) {
		if _, err := LoadAssets(nil); !errors.Is(err, ErrNoImages) {
			t.Errorf("Expected ErrNoImages, got %v", err)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadAssets([]ImagePath{{Path: filepath.Join(dir, "gone.png")}})
		if !errors.Is(err, ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})

	t.Run("MissingEntry", func(t *testing.T) {
		archive := filepath.Join(dir, "a.zip")
		writeZip(t, archive, map[string][]byte{"x.png": pngBytes(t, 1, 1)}, []string{"x.png"})
		_, err := LoadAssets([]ImagePath{{Path: archive + ":y.png", ArchivePath: archive, EntryPath: "y.png"}})
		if !errors.Is(err, ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})

	t.Run("MissingArchive", func(t *testing.T) {
		archive := filepath.Join(dir, "gone.zip")
		_, err := LoadAssets([]ImagePath{{Path: archive + ":y.png", ArchivePath: archive, EntryPath: "y.png"}})
		if !errors.Is(err, ErrAssetNotFound) {
			t.Errorf("Expected ErrAssetNotFound, got %v", err)
		}
	})

	t.Run("Undecodable", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.png")
		if err := os.WriteFile(bad, []byte("not a png"), 0644); err != nil {
			t.Fatal(err)
		}
		_, err := LoadAssets([]ImagePath{{Path: bad}})
		if err == nil || errors.Is(err, ErrAssetNotFound) {
			t.Errorf("Expected a decode error, got %v", err)
		}
	})
}
