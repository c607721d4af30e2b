package cache

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"davar/internal/store"
)

// Cache keeps data packs on disk, one JSON file per pack.
type Cache struct {
	cacheDir   string
	httpClient *http.Client
}

// New opens the cache rooted at dir, creating it if needed.
func New(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{cacheDir: dir, httpClient: &http.Client{}}, nil
}

// Dir returns the cache root.
func (c *Cache) Dir() string {
	return c.cacheDir
}

func (c *Cache) path(name string) string {
	return filepath.Join(c.cacheDir, name+".json")
}

// IsCached checks if a pack is already stored.
func (c *Cache) IsCached(name string) bool {
	_, err := os.Stat(c.path(name))
	return err == nil
}

// PackName derives a pack name from a file name or URL.
func PackName(source string) string {
	base := PackBase(source)
	return strings.TrimSuffix(strings.TrimSuffix(base, ".zip"), ".json")
}

// Add validates the pack at src (a .json file or a .zip holding one) and
// stores it under name.
func (c *Cache) Add(src, name string) error {
	if strings.EqualFold(filepath.Ext(src), ".zip") {
		return c.extractJSON(src, name)
	}

	f, err := os.Open(src)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.write(f, name)
}

// Download fetches a pack over HTTP and stores it under name.
func (c *Cache) Download(ctx context.Context, url, name string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download failed with status %d", resp.StatusCode)
	}

	tmpFile, err := os.CreateTemp("", name+"*"+filepath.Ext(PackBase(url)))
	if err != nil {
		return err
	}
	defer os.Remove(tmpFile.Name())
	defer tmpFile.Close()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}

	return c.Add(tmpFile.Name(), name)
}

// PackBase strips query and fragment from a URL path element.
func PackBase(source string) string {
	base := filepath.Base(source)
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	return base
}

func (c *Cache) extractJSON(zipPath, name string) error {
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer r.Close()

	for _, f := range r.File {
		if filepath.Ext(f.Name) != ".json" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		defer rc.Close()

		return c.write(rc, name)
	}

	return fmt.Errorf("no JSON file found in ZIP")
}

// write validates the pack before it replaces anything on disk.
func (c *Cache) write(r io.Reader, name string) error {
	pack, err := store.DecodePack(r)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(c.cacheDir, name+"*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := store.WritePack(tmp, pack); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), c.path(name))
}

// Load reads a cached pack.
func (c *Cache) Load(name string) (store.Pack, error) {
	if !c.IsCached(name) {
		return store.Pack{}, fmt.Errorf("pack %s not cached", name)
	}
	return store.ReadPackFile(c.path(name))
}

// ListCached returns the names of cached packs in directory order.
func (c *Cache) ListCached() ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(c.cacheDir, "*.json"))
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, strings.TrimSuffix(filepath.Base(m), ".json"))
	}
	return names, nil
}

// ClearCache removes every cached pack. The directory itself stays.
func (c *Cache) ClearCache() error {
	names, err := c.ListCached()
	if err != nil {
		return err
	}
	for _, n := range names {
		if err := c.RemovePack(n); err != nil {
			return err
		}
	}
	return nil
}

// RemovePack deletes one cached pack.
func (c *Cache) RemovePack(name string) error {
	if err := os.Remove(c.path(name)); err != nil {
		return fmt.Errorf("remove pack %s: %w", name, err)
	}
	return nil
}

// GetCacheSize sums the size of the cached packs in bytes.
func (c *Cache) GetCacheSize() (int64, error) {
	names, err := c.ListCached()
	if err != nil {
		return 0, err
	}

	var total int64
	for _, n := range names {
		info, err := os.Stat(c.path(n))
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}
