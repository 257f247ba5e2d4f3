package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/quillworks/quill/pkg/cryptox"
)

func TestMain(m *testing.M) {
	cryptox.SetPepperPath(filepath.Join(os.TempDir(), "quill-service-test-pepper"))
	os.Exit(m.Run())
}
