package cache

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"randbg/internal/domain"
	"randbg/internal/domain/mocks"
)

func newTestCache(t *testing.T, path string) *FileCache {
	t.Helper()
	ctrl := gomock.NewController(t)
	cfg := mocks.NewMockConfig(ctrl)
	cfg.EXPECT().GetCacheFile().Return(path)
	return NewFileCache(zap.NewNop(), cfg)
}

func TestFileCache_Read(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T, path string)
		want    string
		wantErr error
	}{
		{
			name:  "Missing file means first run",
			setup: func(t *testing.T, path string) {},
			want:  "",
		},
		{
			name: "Plain path",
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("/walls/a.png"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			want: "/walls/a.png",
		},
		{
			name: "Trailing newline is trimmed",
			setup: func(t *testing.T, path string) {
				if err := os.WriteFile(path, []byte("/walls/a.png\n"), 0o644); err != nil {
					t.Fatal(err)
				}
			},
			want: "/walls/a.png",
		},
		{
			name: "Unreadable cache is fatal",
			setup: func(t *testing.T, path string) {
				// A directory at the cache path fails the read with
				// something other than not-exist.
				if err := os.Mkdir(path, 0o755); err != nil {
					t.Fatal(err)
				}
			},
			wantErr: domain.ErrCacheRead,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ".wallpaper")
			tt.setup(t, path)

			got, err := newTestCache(t, path).Read()

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("want error %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFileCache_WriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".wallpaper")
	c := newTestCache(t, path)

	if err := c.Write("/walls/a.png"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	got, err := c.Read()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if got != "/walls/a.png" {
		t.Errorf("want /walls/a.png, got %q", got)
	}
}

func TestFileCache_WriteReplacesFully(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".wallpaper")
	c := newTestCache(t, path)

	if err := c.Write("/walls/a-very-long-wallpaper-name.png"); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := c.Write("/b.jpg"); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if string(data) != "/b.jpg" {
		t.Errorf("cache must hold exactly the last selection, got %q", string(data))
	}
}

func TestFileCache_WriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".wallpaper")
	c := newTestCache(t, path)

	if err := c.Write("/walls/a.png"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != ".wallpaper" {
		t.Errorf("expected only the cache file in %s, got %v", dir, entries)
	}
}

func TestFileCache_WriteMissingParent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", ".wallpaper")
	c := newTestCache(t, path)

	err := c.Write("/walls/a.png")

	if !errors.Is(err, domain.ErrCacheWrite) {
		t.Fatalf("want ErrCacheWrite, got %v", err)
	}
}
