// SPDX-License-Identifier: MIT

package parameters_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/parameters"
)

const yamlBank = `
InSb:
  parameters:
    E_0: 0.237
    P: 0.9641
GaAs:
  parameters:
    E_0: 1.519
    P: 1.0493
    g_c: -0.44
`

const tomlBank = `
[InSb.parameters]
E_0 = 0.237
P = 0.9641

[GaAs.parameters]
E_0 = 1.519
P = 1.0493
g_c = -0.44
`

func TestLoadDataBank_KeepsDocumentOrder(t *testing.T) {
	tests := []struct {
		name   string
		src    string
		format parameters.Format
	}{
		{"yaml", yamlBank, parameters.YAML},
		{"toml", tomlBank, parameters.TOML},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bank, err := parameters.LoadDataBank("test", "mem", strings.NewReader(tc.src), tc.format)
			require.NoError(t, err)
			assert.Equal(t, []string{"InSb", "GaAs"}, bank.Materials())

			gaas, err := bank.Material("GaAs")
			require.NoError(t, err)
			assert.Equal(t, parameters.Set{"E_0": 1.519, "P": 1.0493, "g_c": -0.44}, gaas)

			// Material hands out copies.
			gaas["E_0"] = 0
			again, _ := bank.Material("GaAs")
			assert.Equal(t, 1.519, again["E_0"])

			_, err = bank.Material("Si")
			require.ErrorIs(t, err, errors.ErrConfiguration)
		})
	}
}

func TestLoadDataBank_Malformed(t *testing.T) {
	for _, src := range []string{
		"- a\n- b\n",
		"GaAs:\n  params:\n    E_0: 1\n",
		"GaAs:\n  parameters:\n    E_0: abc\n",
	} {
		_, err := parameters.LoadDataBank("bad", "mem", strings.NewReader(src), parameters.YAML)
		require.ErrorIs(t, err, errors.ErrConfiguration, src)
	}

	_, err := parameters.LoadDataBank("bad", "mem", strings.NewReader("[GaAs.parameters]\nE_0 = \"x\"\n"), parameters.TOML)
	require.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestDataBank_TableAndString(t *testing.T) {
	bank, err := parameters.LoadDataBank("test", "mem", strings.NewReader(yamlBank), parameters.YAML)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, bank.Table(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"material", "E_0", "P", "g_c"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"InSb", "0.237", "0.9641", "-"}, strings.Fields(lines[1]))

	assert.Contains(t, bank.String(), "materials: InSb, GaAs")
}

func TestBankCache_Embedded(t *testing.T) {
	cache := parameters.NewBankCache()
	assert.Equal(t, []string{"lawaetz", "winkler"}, cache.Names())

	w, err := cache.Get("winkler")
	require.NoError(t, err)
	assert.Equal(t, []string{"GaAs", "InAs", "InSb"}, w.Materials())

	l, err := cache.Get("lawaetz")
	require.NoError(t, err)
	assert.Equal(t, []string{"GaAs", "InAs", "InSb", "GaSb"}, l.Materials())

	_, err = cache.Get("nope")
	require.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestBankCache_LoadsOnceUnderConcurrency(t *testing.T) {
	cache := parameters.NewBankCache()

	var g errgroup.Group
	banks := make([]*parameters.DataBank, 32)
	for i := range banks {
		i := i
		g.Go(func() error {
			b, err := cache.Get("lawaetz")
			banks[i] = b

			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, b := range banks {
		assert.Same(t, banks[0], b)
	}
	assert.Equal(t, int64(1), cache.Loads())
}

func TestBankCache_CustomSources(t *testing.T) {
	fsys := fstest.MapFS{
		"bank_mine.toml": &fstest.MapFile{Data: []byte(tomlBank)},
		"README":         &fstest.MapFile{Data: []byte("ignored")},
	}
	cache := parameters.NewBankCache(parameters.WithFS(fsys))
	assert.Equal(t, []string{"mine"}, cache.Names())

	b, err := cache.Get("mine")
	require.NoError(t, err)
	assert.Equal(t, "mine", b.Name())
	assert.Equal(t, "bank_mine.toml", b.Path())

	file := filepath.Join(t.TempDir(), "bank_disk.yml")
	require.NoError(t, os.WriteFile(file, []byte(yamlBank), 0o600))
	d, err := cache.Get(file)
	require.NoError(t, err)
	assert.Equal(t, "disk", d.Name())
	assert.Equal(t, []string{"InSb", "GaAs"}, d.Materials())
	assert.Equal(t, int64(2), cache.Loads())
}
