package selfupdate

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "docent_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "docent_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "docent_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "docent_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "docent_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "docent_Windows_x86_64.zip", false},
		{"windows arm64", "windows", "arm64", "docent_Windows_arm64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "normal",
			input: "abc123  docent_Darwin_all.tar.gz\ndef456  docent_Linux_x86_64.tar.gz\n",
			want: map[string]string{
				"docent_Darwin_all.tar.gz":   "abc123",
				"docent_Linux_x86_64.tar.gz": "def456",
			},
		},
		{
			name:  "empty",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "malformed lines skipped",
			input: "abc123  file.tar.gz\nbadline\n  \nfoo  bar  baz\nghi789  other.tar.gz\n",
			want: map[string]string{
				"file.tar.gz":  "abc123",
				"other.tar.gz": "ghi789",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseChecksums([]byte(tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	h := sha256.Sum256(data)
	correctHex := hex.EncodeToString(h[:])

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, verifyChecksum(data, correctHex))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestExtractBinary(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho docent")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "docent", binaryContent)
		got, err := extractBinary(archive, "docent_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := extractBinary(archive, "docent_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestApplyUpdate(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "docent")

	// Original binary carries 0755 so the replacement must too.
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newData := []byte("new-binary-content")
	h := sha256.Sum256(newData)

	require.NoError(t, applyUpdate(newData, target, h[:]))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newData, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// releaseFixture serves a fake GitHub API and download host for one
// release tag. Nil bodies return 404 so individual endpoints can be
// knocked out per subtest.
type releaseFixture struct {
	tag       string
	release   []byte
	checksums []byte
	archive   []byte

	archiveHits int
}

func (f *releaseFixture) server(t *testing.T) *httptest.Server {
	t.Helper()
	asset, err := assetName()
	require.NoError(t, err)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		switch r.URL.Path {
		case "/repos/abhisek/docent/releases/latest":
			body = f.release
		case fmt.Sprintf("/abhisek/docent/releases/download/%s/checksums.txt", f.tag):
			body = f.checksums
		case fmt.Sprintf("/abhisek/docent/releases/download/%s/%s", f.tag, asset):
			f.archiveHits++
			body = f.archive
		}
		if body == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestUpdate(t *testing.T) {
	binaryContent := []byte("new-docent-binary")
	archive := buildTarGz(t, "docent", binaryContent)
	archiveHash := sha256.Sum256(archive)
	asset, err := assetName()
	require.NoError(t, err)
	checksums := []byte(hex.EncodeToString(archiveHash[:]) + "  " + asset + "\n")

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "docent")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		fixture := &releaseFixture{
			tag:       "v2.0.0",
			release:   []byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`),
			checksums: checksums,
			archive:   archive,
		}
		server := fixture.server(t)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)

		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("pinned version skips check", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "docent")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		// No releases/latest body: a pinned update must not consult it.
		fixture := &releaseFixture{
			tag:       "v1.5.0",
			checksums: checksums,
			archive:   archive,
		}
		server := fixture.server(t)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		input := &UpdateInput{CurrentVersion: "v1.0.0", TargetVersion: "v1.5.0"}
		err := checker.Update(context.Background(), input, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		fixture := &releaseFixture{
			tag:     "v1.0.0",
			release: []byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`),
		}
		server := fixture.server(t)

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		fixture := &releaseFixture{
			tag:       "v2.0.0",
			release:   []byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`),
			checksums: []byte("0000000000000000000000000000000000000000000000000000000000000000  " + asset + "\n"),
			archive:   archive,
		}
		server := fixture.server(t)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("asset missing from checksums", func(t *testing.T) {
		fixture := &releaseFixture{
			tag:       "v2.0.0",
			release:   []byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`),
			checksums: []byte("abc123  some_other_asset.tar.gz\n"),
			archive:   archive,
		}
		server := fixture.server(t)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum")
		assert.Zero(t, fixture.archiveHits, "archive must not be downloaded without a checksum entry")
	})

	t.Run("archive download failure", func(t *testing.T) {
		fixture := &releaseFixture{
			tag:       "v2.0.0",
			release:   []byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`),
			checksums: checksums,
		}
		server := fixture.server(t)

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
		)
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}
