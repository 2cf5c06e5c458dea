package fastaio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sumofpairs/multialign/internal/alphabet"
)

func writeTempFASTA(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFilesSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFASTA(t, dir, "a.fasta", ">s1\nACGT\n>s2 description\nACGA\n")

	store, err := LoadFiles([]string{path}, alphabet.DNA, "")
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	assert.Equal(t, "s1", store.At(0).ID())
	assert.Equal(t, "s2", store.At(1).ID())
	assert.Equal(t, "description", store.At(1).Description())
}

func TestLoadFilesMultiFilePrefixesIDs(t *testing.T) {
	dir := t.TempDir()
	p1 := writeTempFASTA(t, dir, "a.fasta", ">s1\nACGT\n")
	p2 := writeTempFASTA(t, dir, "b.fasta", ">s1\nACGA\n")

	store, err := LoadFiles([]string{p1, p2}, alphabet.DNA, "")
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	assert.NotEqual(t, store.At(0).ID(), store.At(1).ID())
}

func TestLoadFilesDuplicateIDsRejected(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFASTA(t, dir, "a.fasta", ">s1\nACGT\n>s1\nACGA\n")

	_, err := LoadFiles([]string{path}, alphabet.DNA, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s1")
}

func TestLoadFilesTooFewRecords(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFASTA(t, dir, "a.fasta", ">s1\nACGT\n")

	_, err := LoadFiles([]string{path}, alphabet.DNA, "")
	require.Error(t, err)
}

func TestLoadFilesSkipCharacters(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFASTA(t, dir, "a.fasta", ">s1\nAC-GT\n>s2\nAC-GA\n")

	store, err := LoadFiles([]string{path}, alphabet.DNA, "-")
	require.NoError(t, err)
	assert.Equal(t, "ACGT", store.At(0).String())
}

func TestLoadFilesKeepsEmptyBodiedRecord(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFASTA(t, dir, "a.fasta", ">empty\n>s2\nACGA\n")

	store, err := LoadFiles([]string{path}, alphabet.DNA, "")
	require.NoError(t, err)
	require.Equal(t, 2, store.Len())
	assert.Equal(t, "empty", store.At(0).ID())
	assert.Equal(t, 0, store.At(0).Len())
}

func TestLoadFilesUnknownCharacter(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFASTA(t, dir, "a.fasta", ">s1\nACXT\n>s2\nACGA\n")

	_, err := LoadFiles([]string{path}, alphabet.DNA, "")
	require.Error(t, err)
}
