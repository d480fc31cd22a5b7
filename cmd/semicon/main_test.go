// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/semicon/errors"
	"github.com/katalvlaran/semicon/parameters"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestBanks(t *testing.T) {
	out, err := execute(t, "banks")
	require.NoError(t, err)
	assert.Contains(t, out, "bank name: lawaetz")
	assert.Contains(t, out, "bank name: winkler")

	out, err = execute(t, "banks", "winkler")
	require.NoError(t, err)
	assert.Contains(t, out, "material")
	assert.Contains(t, out, "InSb")
	assert.Contains(t, out, "gamma_1")

	_, err = execute(t, "banks", "nope")
	require.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestParams(t *testing.T) {
	out, err := execute(t, "params", "GaAs", "--bank", "winkler", "--bands", "gamma_6c", "--effective")
	require.NoError(t, err)
	assert.Contains(t, out, "# GaAs from winkler, bands: gamma_6c")
	assert.Contains(t, out, "effective")
	assert.Contains(t, out, "gamma_0")
	assert.Contains(t, out, "1.519")

	out, err = execute(t, "params", "GaAs", "--gamma0", "1")
	require.NoError(t, err)
	assert.Regexp(t, `gamma_0\s+1\s`, out)

	_, err = execute(t, "params", "GaAs", "--gamma0", "1", "--p", "1")
	require.ErrorIs(t, err, parameters.ErrRenormalizeTarget)

	_, err = execute(t, "params", "GaAs", "--gamma0", "x")
	require.ErrorIs(t, err, errors.ErrConfiguration)

	_, err = execute(t, "params", "Si")
	require.ErrorIs(t, err, errors.ErrConfiguration)

	_, err = execute(t, "params", "GaAs", "--bands", "gamma_5v")
	require.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestParams_ConfigAndEnv(t *testing.T) {
	file := filepath.Join(t.TempDir(), "semicon.toml")
	require.NoError(t, os.WriteFile(file, []byte("bank = \"winkler\"\n"), 0o600))

	out, err := execute(t, "params", "GaAs", "--config", file)
	require.NoError(t, err)
	assert.Contains(t, out, "from winkler")

	t.Setenv("SEMICON_BANK", "winkler")
	out, err = execute(t, "params", "GaAs")
	require.NoError(t, err)
	assert.Contains(t, out, "from winkler")

	_, err = execute(t, "params", "GaAs", "--config", filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, errors.ErrConfiguration)
}

func TestHamiltonian(t *testing.T) {
	out, err := execute(t, "hamiltonian", "--bands", "gamma_6c", "--components", "foreman,zeeman")
	require.NoError(t, err)
	assert.Contains(t, out, "# bands: gamma_6c; components: foreman, zeeman")
	assert.Contains(t, out, "k_x")
	assert.Contains(t, out, "B_z")

	out, err = execute(t, "hamiltonian", "--bands", "gamma_6c", "--axis", "0,0,1", "--angle", "90", "--decimals", "6", "--exact")
	require.NoError(t, err)
	assert.Contains(t, out, "k_x")

	for _, args := range [][]string{
		{"--bands", "gamma_5v"},
		{"--components", "rashba"},
		{"--coords", "zx"},
		{"--axis", "0,1"},
	} {
		_, err = execute(t, append([]string{"hamiltonian"}, args...)...)
		require.ErrorIs(t, err, errors.ErrConfiguration, "args %v", args)
	}

	_, err = execute(t, "hamiltonian", "--axis", "0,0,0")
	require.ErrorIs(t, err, errors.ErrDomain)
}

func TestSpin(t *testing.T) {
	out, err := execute(t, "spin", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Sx =")
	assert.Contains(t, out, "Sz =")

	_, err = execute(t, "spin", "0.3")
	require.ErrorIs(t, err, errors.ErrDomain)

	_, err = execute(t, "spin", "half")
	require.ErrorIs(t, err, errors.ErrConfiguration)
}
