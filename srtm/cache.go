package srtm

import (
	"archive/zip"
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"

	"github.com/jfranc38/routeweave/osm"
)

//go:embed index.json
var indexJSON []byte

// Cache resolves elevation samples from SRTM .hgt tiles, downloading
// and unzipping tiles it has not seen yet and memoizing the decoded
// raster for the lifetime of the process. Tiles are additionally
// cached on disk under dir so a later run skips the download.
type Cache struct {
	dir   string
	index map[string]string
	mu    sync.Mutex
	tiles map[string]tile
}

// NewCache builds a Cache that stores downloaded .hgt files under dir.
func NewCache(dir string) *Cache {
	var index map[string]string
	if err := json.Unmarshal(indexJSON, &index); err != nil {
		log.Fatalf("srtm: decode embedded tile index: %v", err)
	}
	return &Cache{
		dir:   dir,
		index: index,
		tiles: make(map[string]tile),
	}
}

// get returns the decoded tile covering coords, from memory, disk, or
// a fresh download, in that order of preference.
func (c *Cache) get(coords osm.Coordinate) tile {
	name := filename(coords)

	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.tiles[name]; ok {
		return t
	}

	path := filepath.Join(c.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		data, err = c.download(name)
		if err != nil {
			log.Fatalf("srtm: fetch tile %s: %v", name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Printf("srtm: cache tile %s to disk: %v", name, err)
		}
	}

	t := newTile(coords, data)
	c.tiles[name] = t
	return t
}

// download fetches and unzips the named tile using the embedded URL
// index.
func (c *Cache) download(name string) ([]byte, error) {
	url, ok := c.index[name]
	if !ok {
		return nil, fmt.Errorf("srtm: no known source for tile %s", name)
	}

	log.Printf("downloading SRTM tile %s...", name)
	status, body, err := fasthttp.Get(nil, url)
	if err != nil {
		return nil, fmt.Errorf("srtm: download %s: %w", url, err)
	}
	if status != fasthttp.StatusOK {
		return nil, fmt.Errorf("srtm: download %s: status %d", url, status)
	}

	return unzip(body, name)
}

// unzip extracts the .hgt member named filename from a zip archive
// held in memory.
func unzip(data []byte, filename string) ([]byte, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("srtm: open zip: %w", err)
	}

	f, err := reader.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("srtm: zip has no member %s: %w", filename, err)
	}
	defer f.Close()

	return io.ReadAll(f)
}

// filename builds the canonical .hgt filename for the tile covering
// coords, named by its south-west corner, e.g. "N48E011.hgt".
func filename(coords osm.Coordinate) string {
	lat := int(math.Floor(coords.Lat()))
	lon := int(math.Floor(coords.Lon()))

	latCardinal, lonCardinal := "N", "E"
	if lat < 0 {
		latCardinal = "S"
		lat = -lat
	}
	if lon < 0 {
		lonCardinal = "W"
		lon = -lon
	}
	return fmt.Sprintf("%s%02d%s%03d.hgt", latCardinal, lat, lonCardinal, lon)
}
