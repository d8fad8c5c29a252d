package uploader

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsArchive(t *testing.T) {
	require.True(t, IsArchive("model.zip", ""))
	require.True(t, IsArchive("model.ZIP", ""))
	require.True(t, IsArchive("model.rar", ""))
	require.True(t, IsArchive("bundle", "application/x-zip-compressed"))
	require.False(t, IsArchive("model.m", "text/plain"))
	require.False(t, IsArchive("assembly.sldasm", ""))
}

func TestArchiveNameStripsWhitespace(t *testing.T) {
	require.Equal(t, "Test_Run.zip", ArchiveName("Test Run"))
	require.Equal(t, "Robot_Arm_v2.zip", ArchiveName("  Robot  Arm\tv2 "))
	require.Equal(t, "project.zip", ArchiveName("   "))
}

func TestPackagePassesArchivesThrough(t *testing.T) {
	data := []byte("already zipped")
	name, out, err := PackageFile("Test Run", "sim.zip", data, "application/zip")
	require.NoError(t, err)
	require.Equal(t, "sim.zip", name)
	require.Equal(t, data, out)
}

func TestPackageWrapsLooseFile(t *testing.T) {
	data := []byte("disp('hello')")
	name, out, err := PackageFile("Test Run", "sim.m", data, "text/plain")
	require.NoError(t, err)
	require.Equal(t, "Test_Run.zip", name)

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	require.Len(t, zr.File, 1)
	require.Equal(t, "sim.m", zr.File[0].Name)

	rc, err := zr.File[0].Open()
	require.NoError(t, err)
	defer rc.Close()
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.Equal(t, data, content)
}
