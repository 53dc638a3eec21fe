package tree

import (
	"os"
	"time"

	"github.com/gogpu/indiepixel/canvas"
	"github.com/gogpu/indiepixel/internal/cache"
)

// AssetCache keeps decoded images between builds. Entries are keyed by path,
// size and modification time, so an edited file is decoded again.
// It is safe for concurrent use.
type AssetCache struct {
	c *cache.Sharded[assetKey, *canvas.Asset]
}

type assetKey struct {
	path    string
	size    int64
	modTime time.Time
}

func hashAsset(k assetKey) uint64 {
	return cache.StringHasher(k.path) ^ uint64(k.modTime.UnixNano())
}

// NewAssetCache returns a cache holding roughly capacity images.
func NewAssetCache(capacity int) *AssetCache {
	return &AssetCache{c: cache.New[assetKey, *canvas.Asset](capacity/cache.ShardCount+1, hashAsset)}
}

// Open returns the decoded image at path, decoding it only when the file
// changed since it was last cached.
func (a *AssetCache) Open(path string) (*canvas.Asset, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	key := assetKey{path: path, size: fi.Size(), modTime: fi.ModTime()}
	if asset, ok := a.c.Get(key); ok {
		return asset, nil
	}
	asset, err := canvas.OpenAsset(path)
	if err != nil {
		return nil, err
	}
	a.c.Set(key, asset)
	return asset, nil
}

// Len returns the number of cached images.
func (a *AssetCache) Len() int {
	return a.c.Len()
}
