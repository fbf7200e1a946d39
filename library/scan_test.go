package library

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/simplifiedchinese"

	"txt_reader/utils"
)

const sampleNovel = "测试小说\n作者：测试\n第1章 开端\n你好\n第2章 转折\n世界\n"

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestScanCreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "novel")

	catalog, skipped, err := Scan(dir, nil)
	require.NoError(t, err)
	require.Empty(t, catalog)
	require.Empty(t, skipped)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestScanKeysByFilename(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte(sampleNovel))
	writeFile(t, dir, "b.txt", []byte(sampleNovel)) // same title, different file

	catalog, _, err := Scan(dir, nil)
	require.NoError(t, err)
	require.Len(t, catalog, 2)
	require.Equal(t, "测试小说", catalog["a.txt"].Title)
	require.Equal(t, "测试小说", catalog["b.txt"].Title)
}

func TestScanIgnoresNonTxtAndSubdirs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte(sampleNovel))
	writeFile(t, dir, "notes.md", []byte("# nope"))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0755))
	writeFile(t, filepath.Join(dir, "sub"), "nested.txt", []byte(sampleNovel))

	catalog, skipped, err := Scan(dir, nil)
	require.NoError(t, err)
	require.Empty(t, skipped)
	require.Len(t, catalog, 1)
	_, ok := catalog["a.txt"]
	require.True(t, ok)
}

func TestScanSkipsUndecodableFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "good.txt", []byte(sampleNovel))
	writeFile(t, dir, "bad.txt", []byte{0xFF, 0xFF, 0xFF, 0x00, 0x80})

	catalog, skipped, err := Scan(dir, nil)
	require.NoError(t, err)
	require.Len(t, catalog, 1)
	require.Equal(t, []string{"bad.txt"}, skipped)
}

func TestScanDecodesGBK(t *testing.T) {
	dir := t.TempDir()
	encoded, err := simplifiedchinese.GBK.NewEncoder().Bytes([]byte(sampleNovel))
	require.NoError(t, err)
	writeFile(t, dir, "gbk.txt", encoded)

	catalog, skipped, err := Scan(dir, nil)
	require.NoError(t, err)
	require.Empty(t, skipped)

	novel := catalog["gbk.txt"]
	require.Equal(t, "测试小说", novel.Title)
	require.Equal(t, "测试", novel.Author)
	require.Len(t, novel.Chapters, 2)
}

func TestScanMergesProgress(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte(sampleNovel))

	progress := utils.ProgressMap{
		"测试小说": {Chapter: 1, Timestamp: "2026-01-02T03:04:05Z"},
	}

	catalog, _, err := Scan(dir, progress)
	require.NoError(t, err)

	novel := catalog["a.txt"]
	require.Equal(t, "第2章 转折", novel.Current)
	require.Equal(t, 2026, novel.Modified.Year())
}

func TestSortedByLastRead(t *testing.T) {
	c := Catalog{
		"old.txt": {Filename: "old.txt", Modified: mustTime(t, "2026-01-01T00:00:00Z")},
		"new.txt": {Filename: "new.txt", Modified: mustTime(t, "2026-02-01T00:00:00Z")},
	}

	novels := c.SortedByLastRead()
	require.Equal(t, "new.txt", novels[0].Filename)
	require.Equal(t, "old.txt", novels[1].Filename)
}

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t.Fatal(err)
	}
	return parsed
}
