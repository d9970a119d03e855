// Package cache provides maintenance for the localized filesystem cache.
package cache

import (
	"os"
	"time"

	"github.com/ytui-cli/ytui/filesystem"
	"github.com/ytui-cli/ytui/log"
	"github.com/ytui-cli/ytui/where"
)

// TTL is the age past which a cached artifact is considered stale and pruned.
const TTL = 7 * 24 * time.Hour

// CollectGarbage prunes stale artifacts from the cache directory. Cached search
// metadata and version lookups carry their own gache lifetimes; this sweep only
// reclaims disk space from entries nothing will read again.
func CollectGarbage() {
	err := filesystem.API().Walk(where.Cache(), func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}

		if time.Since(info.ModTime()) > TTL {
			_ = filesystem.API().Remove(path)
		}

		return nil
	})
	if err != nil {
		log.Debugf("cache gc: %v", err)
	}
}
