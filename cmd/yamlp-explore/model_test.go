package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewModel(t *testing.T) {
	t.Parallel()

	m, err := newModel("doc.yaml", []byte("a: 1\nb: 2\n"))
	require.NoError(t, err)
	assert.NotEmpty(t, m.events)
	assert.Empty(t, m.pathText)
	assert.Empty(t, m.output)
}

func TestNewModel_BadDocument(t *testing.T) {
	t.Parallel()

	_, err := newModel("doc.yaml", []byte("a: [1, 2\n"))
	require.Error(t, err)
}

func TestModel_Refilter(t *testing.T) {
	t.Parallel()

	m, err := newModel("doc.yaml", []byte("first: {a: 1, b: 2}\n"))
	require.NoError(t, err)

	m.pathText = ".first.a"
	m.refilter()

	require.Nil(t, m.parseErr)
	require.NoError(t, m.filterErr)
	assert.Equal(t, "1\n", m.output)
}

func TestModel_Refilter_BadPath(t *testing.T) {
	t.Parallel()

	m, err := newModel("doc.yaml", []byte("a: 1\n"))
	require.NoError(t, err)

	m.pathText = "["
	m.refilter()

	require.NotNil(t, m.parseErr)
	assert.Empty(t, m.output)
}

func TestModel_Refilter_EmptyPathClearsOutput(t *testing.T) {
	t.Parallel()

	m, err := newModel("doc.yaml", []byte("a: 1\n"))
	require.NoError(t, err)

	m.pathText = ".a"
	m.refilter()
	require.NotEmpty(t, m.output)

	m.pathText = ""
	m.refilter()
	assert.Empty(t, m.output)
	assert.Nil(t, m.path)
}

func TestModel_ForceFlowToggle(t *testing.T) {
	t.Parallel()

	m, err := newModel("doc.yaml", []byte("a: {x: 1, y: 2}\n"))
	require.NoError(t, err)

	m.pathText = ".a"
	m.refilter()
	require.NoError(t, m.filterErr)
	assert.Equal(t, "x: 1\ny: 2\n", m.output)

	m.forceFlow = true
	m.refilter()
	require.NoError(t, m.filterErr)
	assert.Equal(t, "{x: 1, y: 2}\n", m.output)
}

func TestModel_Reload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "doc.yaml")
	require.NoError(t, os.WriteFile(file, []byte("a: 1\n"), 0o600))

	m, err := newModel(file, []byte("a: 1\n"))
	require.NoError(t, err)

	m.pathText = ".a"
	m.refilter()
	require.Equal(t, "1\n", m.output)

	require.NoError(t, os.WriteFile(file, []byte("a: 2\n"), 0o600))
	require.NoError(t, m.reload())
	assert.Equal(t, "2\n", m.output)
}

func TestModel_Reload_MissingFile(t *testing.T) {
	t.Parallel()

	m, err := newModel(filepath.Join(t.TempDir(), "missing.yaml"), []byte("a: 1\n"))
	require.NoError(t, err)

	err = m.reload()
	require.Error(t, err)
}

func TestView_RendersWithoutPanicking(t *testing.T) {
	t.Parallel()

	m, err := newModel("doc.yaml", []byte("a: 1\n"))
	require.NoError(t, err)

	m.pathText = ".a"
	m.refilter()

	v := m.View()
	assert.True(t, v.AltScreen)
}
