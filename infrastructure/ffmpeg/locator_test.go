package ffmpeg

import (
	"errors"
	"path/filepath"
	"testing"

	"music-extractor/domain/extract"
)

// locatorFixture builds a Locator whose environment, bundled copies, and
// search path are fully controlled by the test.
type locatorFixture struct {
	env      map[string]string
	exeDir   string
	existing map[string]bool
	pathHit  string
}

func (f *locatorFixture) locator() *Locator {
	return NewLocator(
		WithGetenv(func(key string) string { return f.env[key] }),
		WithExecutablePath(func() (string, error) {
			return filepath.Join(f.exeDir, "music-extractor"), nil
		}),
		WithExistsCheck(func(path string) bool { return f.existing[path] }),
		WithLookPath(func(name string) (string, error) {
			if f.pathHit != "" {
				return f.pathHit, nil
			}
			return "", errors.New("executable file not found in $PATH")
		}),
	)
}

func TestLocatePrecedence(t *testing.T) {
	exeDir := filepath.Join("/opt", "music-extractor")
	bundled := filepath.Join(exeDir, ExeName())

	tests := []struct {
		name     string
		explicit string
		fixture  locatorFixture
		want     string
		wantErr  error
	}{
		{
			name:     "explicit override wins over everything",
			explicit: "/custom/ffmpeg",
			fixture: locatorFixture{
				env:      map[string]string{EnvVar: "/env/ffmpeg"},
				exeDir:   exeDir,
				existing: map[string]bool{bundled: true},
				pathHit:  "/usr/bin/ffmpeg",
			},
			want: "/custom/ffmpeg",
		},
		{
			name: "environment override wins over bundled and search path",
			fixture: locatorFixture{
				env:      map[string]string{EnvVar: "/env/ffmpeg"},
				exeDir:   exeDir,
				existing: map[string]bool{bundled: true},
				pathHit:  "/usr/bin/ffmpeg",
			},
			want: "/env/ffmpeg",
		},
		{
			name: "bundled copy wins over search path",
			fixture: locatorFixture{
				env:      map[string]string{},
				exeDir:   exeDir,
				existing: map[string]bool{bundled: true},
				pathHit:  "/usr/bin/ffmpeg",
			},
			want: bundled,
		},
		{
			name: "bundled bin subdirectory",
			fixture: locatorFixture{
				env:      map[string]string{},
				exeDir:   exeDir,
				existing: map[string]bool{filepath.Join(exeDir, "bin", ExeName()): true},
			},
			want: filepath.Join(exeDir, "bin", ExeName()),
		},
		{
			name: "search path as last resort",
			fixture: locatorFixture{
				env:      map[string]string{},
				exeDir:   exeDir,
				existing: map[string]bool{},
				pathHit:  "/usr/bin/ffmpeg",
			},
			want: "/usr/bin/ffmpeg",
		},
		{
			name: "nothing found",
			fixture: locatorFixture{
				env:      map[string]string{},
				exeDir:   exeDir,
				existing: map[string]bool{},
			},
			wantErr: extract.ErrToolNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fixture.locator().Locate(tt.explicit)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Locate() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Locate() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Locate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLocateExplicitNotExistenceChecked(t *testing.T) {
	// The explicit override is a caller contract: it is returned verbatim
	// even when nothing on disk backs it.
	fixture := locatorFixture{
		env:      map[string]string{},
		exeDir:   "/opt/music-extractor",
		existing: map[string]bool{},
	}

	got, err := fixture.locator().Locate("/nowhere/ffmpeg")
	if err != nil {
		t.Fatalf("Locate() unexpected error: %v", err)
	}
	if got != "/nowhere/ffmpeg" {
		t.Errorf("Locate() = %q, want %q", got, "/nowhere/ffmpeg")
	}
}

func TestLocateCacheable(t *testing.T) {
	calls := 0
	locator := NewLocator(
		WithGetenv(func(string) string { return "" }),
		WithExecutablePath(func() (string, error) { return "/opt/me/music-extractor", nil }),
		WithExistsCheck(func(string) bool { return false }),
		WithLookPath(func(string) (string, error) {
			calls++
			return "/usr/bin/ffmpeg", nil
		}),
	)

	for i := 0; i < 3; i++ {
		if _, err := locator.Locate(""); err != nil {
			t.Fatalf("Locate() unexpected error: %v", err)
		}
	}
	if calls != 3 {
		t.Errorf("Locate() ran %d lookups for 3 calls; resolution must stay side-effect free", calls)
	}
}
