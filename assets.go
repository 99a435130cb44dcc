package main

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	// ErrAssetNotFound is returned when a named image cannot be located
	ErrAssetNotFound = errors.New("asset not found")
	// ErrEmptyImage is returned for images with a zero dimension
	ErrEmptyImage = errors.New("image has zero size")
)

type ImagePath struct {
	Path        string // Local file path or archive:entry format
	ArchivePath string // Empty for regular files, path to archive for entries
	EntryPath   string // Empty for regular files, path within archive for entries
}

// Asset is one decoded image with its intrinsic size
type Asset struct {
	Name  string
	Image image.Image
	Size  Size
}

func isArchiveExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip", ".rar", ".7z":
		return true
	default:
		return false
	}
}

func isSupportedExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".webp", ".bmp", ".gif":
		return true
	default:
		return false
	}
}

// entryVisitor is called for each archive entry. Returning errStopWalk ends
// the walk early without error.
type entryVisitor func(name string, isDir bool, open func() (io.ReadCloser, error)) error

var errStopWalk = errors.New("stop walk")

func walkArchive(archivePath string, visit entryVisitor) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(archivePath)); ext {
	case ".zip":
		err = walkZip(archivePath, visit)
	case ".rar":
		err = walkRar(archivePath, visit)
	case ".7z":
		err = walk7z(archivePath, visit)
	default:
		return fmt.Errorf("unsupported archive format: %s", ext)
	}
	if errors.Is(err, errStopWalk) {
		return nil
	}
	return err
}

func walkZip(archivePath string, visit entryVisitor) error {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if err := visit(f.Name, f.FileInfo().IsDir(), f.Open); err != nil {
			return err
		}
	}
	return nil
}

func walkRar(archivePath string, visit entryVisitor) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return err
	}

	for {
		header, err := r.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		// rar is a stream: the entry body is readable until the next Next()
		open := func() (io.ReadCloser, error) { return io.NopCloser(r), nil }
		if err := visit(header.Name, header.IsDir, open); err != nil {
			return err
		}
	}
}

func walk7z(archivePath string, visit entryVisitor) error {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if err := visit(f.Name, f.FileInfo().IsDir(), f.Open); err != nil {
			return err
		}
	}
	return nil
}

// File collection functions

func extractImagesFromArchive(archivePath string) ([]ImagePath, error) {
	var images []ImagePath
	err := walkArchive(archivePath, func(name string, isDir bool, _ func() (io.ReadCloser, error)) error {
		if !isDir && isSupportedExt(name) {
			images = append(images, ImagePath{
				Path:        archivePath + ":" + name,
				ArchivePath: archivePath,
				EntryPath:   name,
			})
		}
		return nil
	})
	if err != nil {
		log.Printf("Error: Failed to process archive %s: %v", archivePath, err)
		return nil, err
	}
	return images, nil
}

// sortImagePaths sorts the given image paths using the specified sort strategy.
// Returns a new sorted slice without modifying the original.
func sortImagePaths(images []ImagePath, sortMethod int) []ImagePath {
	return GetSortStrategy(sortMethod).Sort(images)
}

// collectImages expands the command line into image paths. Files named
// directly keep argument order; directory and archive contents are sorted.
func collectImages(args []string, sortMethod int) ([]ImagePath, error) {
	var list []ImagePath
	for _, p := range args {
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, p)
			}
			return nil, err
		}

		switch {
		case info.IsDir():
			dirImages, err := collectDirectory(p, sortMethod)
			if err != nil {
				return nil, err
			}
			list = append(list, dirImages...)
		case isSupportedExt(p):
			list = append(list, ImagePath{Path: p})
		case isArchiveExt(p):
			archiveImages, err := extractImagesFromArchive(p)
			if err != nil {
				log.Printf("Warning: Skipping problematic archive %s: %v", p, err)
				continue
			}
			list = append(list, sortImagePaths(archiveImages, sortMethod)...)
		default:
			debugLog("ignoring unsupported file %s", p)
		}
	}

	return list, nil
}

func collectDirectory(dir string, sortMethod int) ([]ImagePath, error) {
	var images []ImagePath
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if isSupportedExt(path) {
			images = append(images, ImagePath{Path: path})
		} else if isArchiveExt(path) {
			archiveImages, err := extractImagesFromArchive(path)
			if err != nil {
				log.Printf("Warning: Skipping problematic archive %s: %v", path, err)
				return nil
			}
			images = append(images, sortImagePaths(archiveImages, sortMethod)...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sortImagePaths(images, sortMethod), nil
}

// Image loading functions

// LoadAssets decodes every path, in order. Each archive is opened once. Any
// missing or undecodable image fails the whole load.
func LoadAssets(paths []ImagePath) ([]Asset, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("loading assets: %w", ErrNoImages)
	}

	wanted := make(map[string]map[string]bool)
	for _, p := range paths {
		if p.ArchivePath == "" {
			continue
		}
		if wanted[p.ArchivePath] == nil {
			wanted[p.ArchivePath] = make(map[string]bool)
		}
		wanted[p.ArchivePath][p.EntryPath] = true
	}

	entries := make(map[string]map[string][]byte, len(wanted))
	for archivePath, names := range wanted {
		data, err := readArchiveEntries(archivePath, names)
		if err != nil {
			return nil, err
		}
		entries[archivePath] = data
	}

	assets := make([]Asset, 0, len(paths))
	for _, p := range paths {
		var data []byte
		if p.ArchivePath == "" {
			b, err := os.ReadFile(p.Path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, p.Path)
				}
				return nil, fmt.Errorf("reading %s: %w", p.Path, err)
			}
			data = b
		} else {
			b, ok := entries[p.ArchivePath][p.EntryPath]
			if !ok {
				return nil, fmt.Errorf("%w: entry %s in %s", ErrAssetNotFound, p.EntryPath, p.ArchivePath)
			}
			data = b
		}

		asset, err := decodeAsset(p.Path, data)
		if err != nil {
			return nil, err
		}
		debugLog("loaded %s (%vx%v)", asset.Name, asset.Size.W, asset.Size.H)
		assets = append(assets, asset)
	}
	return assets, nil
}

func readArchiveEntries(archivePath string, names map[string]bool) (map[string][]byte, error) {
	data := make(map[string][]byte, len(names))
	err := walkArchive(archivePath, func(name string, isDir bool, open func() (io.ReadCloser, error)) error {
		if isDir || !names[name] {
			return nil
		}
		rc, err := open()
		if err != nil {
			return err
		}
		defer rc.Close()

		b, err := io.ReadAll(rc)
		if err != nil {
			return fmt.Errorf("reading %s from %s: %w", name, archivePath, err)
		}
		data[name] = b
		if len(data) == len(names) {
			return errStopWalk
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, archivePath)
		}
		return nil, err
	}
	return data, nil
}

func decodeAsset(name string, data []byte) (Asset, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return Asset{}, fmt.Errorf("decoding %s: %w", name, err)
	}
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return Asset{}, fmt.Errorf("%s: %w", name, ErrEmptyImage)
	}
	return Asset{
		Name:  name,
		Image: img,
		Size:  Size{W: float64(b.Dx()), H: float64(b.Dy())},
	}, nil
}

// assetSizes returns the intrinsic sizes the layout code works with
func assetSizes(assets []Asset) []Size {
	sizes := make([]Size, len(assets))
	for i, a := range assets {
		sizes[i] = a.Size
	}
	return sizes
}
