package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/nfrund/cbt/internal/config"
	"github.com/spf13/afero"
)

// SyllabusContent is the body of the kisi-kisi.pdf placed in StaticFs.
const SyllabusContent = "%PDF-1.4 test"

// ConfigForTests applies the project's .env.test through t.Setenv and
// returns the resulting configuration.
func ConfigForTests(t *testing.T) *config.Config {
	t.Helper()

	env, err := godotenv.Read(filepath.Join(projectRoot(t), ".env.test"))
	if err != nil {
		t.Fatalf("failed to load .env.test file: %v", err)
	}
	for _, key := range []string{"STATIC_DIR", "EXTERNAL_BASE_URL", "COOKIE_SECURE", "APP_NAME"} {
		t.Setenv(key, "")
	}
	for key, value := range env {
		t.Setenv(key, value)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		t.Fatalf("invalid test configuration: %v", err)
	}
	return cfg
}

// StaticFs returns an in-memory static tree with the downloadable syllabus and the stylesheet.
func StaticFs(t *testing.T) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	files := map[string]string{
		"kisi-kisi.pdf": SyllabusContent,
		"css/app.css":   "body{}",
	}
	for name, body := range files {
		if err := afero.WriteFile(fs, name, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return fs
}

func projectRoot(t *testing.T) string {
	t.Helper()
	path, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path
		}
		if path == filepath.Dir(path) {
			t.Fatalf("could not find project root with go.mod")
		}
		path = filepath.Dir(path)
	}
}
