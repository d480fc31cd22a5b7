// SPDX-License-Identifier: MIT

package parameters

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/semicon/errors"
)

//go:embed databank/*
var embedded embed.FS

// bankExts are tried in order when resolving a bank name.
var bankExts = []string{".yml", ".yaml", ".toml"}

// BankCache loads data banks lazily and keeps them for its lifetime.
// Concurrent first accesses to the same bank share one load.
type BankCache struct {
	fsys   fs.FS
	logger *zap.Logger

	mu    sync.RWMutex
	banks map[string]*DataBank
	group singleflight.Group
	loads atomic.Int64
}

// NewBankCache returns an empty cache over the embedded banks (winkler,
// lawaetz) unless WithFS is given.
func NewBankCache(opts ...Option) *BankCache {
	o := gatherOptions(opts...)
	fsys := o.fsys
	if fsys == nil {
		sub, err := fs.Sub(embedded, "databank")
		if err != nil {
			panic(err)
		}
		fsys = sub
	}

	return &BankCache{fsys: fsys, logger: o.logger, banks: make(map[string]*DataBank)}
}

var (
	defaultCacheOnce sync.Once
	defaultCache     *BankCache
)

// DefaultBankCache returns the process-wide cache over the embedded banks.
func DefaultBankCache() *BankCache {
	defaultCacheOnce.Do(func() { defaultCache = NewBankCache() })

	return defaultCache
}

// Get returns the bank registered under id, loading it on first use.
// id is either a bank name (looked up as bank_<id>.{yml,yaml,toml}) or an
// absolute path to a bank file on disk.
//
// Errors:
//   - errors.ErrConfiguration for an unknown name or a malformed file.
func (c *BankCache) Get(id string) (*DataBank, error) {
	c.mu.RLock()
	b, ok := c.banks[id]
	c.mu.RUnlock()
	if ok {
		return b, nil
	}

	v, err, _ := c.group.Do(id, func() (interface{}, error) {
		c.mu.RLock()
		b, ok := c.banks[id]
		c.mu.RUnlock()
		if ok {
			return b, nil
		}

		b, err := c.load(id)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.banks[id] = b
		c.mu.Unlock()

		return b, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*DataBank), nil
}

func (c *BankCache) load(id string) (*DataBank, error) {
	if filepath.IsAbs(id) {
		format, err := FormatOf(id)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(id)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrConfiguration, "parameters: open bank: %v", err)
		}
		defer f.Close()

		name := strings.TrimSuffix(strings.TrimPrefix(filepath.Base(id), "bank_"), filepath.Ext(id))
		c.loads.Add(1)
		c.logger.Debug("loading data bank", zap.String("name", name), zap.String("path", id))

		return LoadDataBank(name, id, f, format)
	}

	for _, ext := range bankExts {
		file := "bank_" + id + ext
		f, err := c.fsys.Open(file)
		if err != nil {
			continue
		}
		defer f.Close()

		format, _ := FormatOf(file)
		c.loads.Add(1)
		c.logger.Debug("loading data bank", zap.String("name", id), zap.String("path", file))

		return LoadDataBank(id, file, f, format)
	}

	return nil, errors.Wrapf(errors.ErrConfiguration,
		"parameters: unknown data bank %q (available: %s)", id, strings.Join(c.Names(), ", "))
}

// Names lists the bank names available in the cache's file system, sorted.
func (c *BankCache) Names() []string {
	seen := make(map[string]struct{})
	for _, ext := range bankExts {
		matches, _ := fs.Glob(c.fsys, "bank_*"+ext)
		for _, m := range matches {
			seen[strings.TrimSuffix(strings.TrimPrefix(m, "bank_"), ext)] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)

	return out
}

// Loads reports how many banks were decoded from storage.
func (c *BankCache) Loads() int64 { return c.loads.Load() }
