package sketch

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writePng(t *testing.T, path string, w, h int) {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFindImage_PrefersPng(t *testing.T) {
	dir := t.TempDir()
	writePng(t, filepath.Join(dir, "image.png"), 2, 2)
	writePng(t, filepath.Join(dir, "image.jpg"), 2, 2)

	got, err := FindImage(dir)
	if err != nil {
		t.Fatalf("FindImage() error = %v", err)
	}
	if got != filepath.Join(dir, "image.png") {
		t.Errorf("FindImage() = %q, want the png candidate", got)
	}
}

func TestFindImage_FallsBackToJpg(t *testing.T) {
	dir := t.TempDir()
	writePng(t, filepath.Join(dir, "image.jpg"), 2, 2)

	got, err := FindImage(dir)
	if err != nil {
		t.Fatalf("FindImage() error = %v", err)
	}
	if got != filepath.Join(dir, "image.jpg") {
		t.Errorf("FindImage() = %q, want the jpg candidate", got)
	}
}

func TestFindImage_NoneFound(t *testing.T) {
	_, err := FindImage(t.TempDir())
	if !errors.Is(err, ErrImageNotFound) {
		t.Errorf("FindImage() error = %v, want ErrImageNotFound", err)
	}
}

func TestLoadImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	writePng(t, path, 3, 2)

	img, err := LoadImage(path)
	if err != nil {
		t.Fatalf("LoadImage() error = %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Errorf("decoded bounds = %v, want 3x2", img.Bounds())
	}
}

func TestLoadImage_Unreadable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "image.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadImage(path); err == nil {
		t.Error("expected decode error for garbage file")
	}
}

func TestLoadImage_Missing(t *testing.T) {
	if _, err := LoadImage(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Error("expected error for missing file")
	}
}
