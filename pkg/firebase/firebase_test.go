package firebase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitFirebaseRequiresCredentials(t *testing.T) {
	_, err := InitFirebase(context.Background(), "", zap.NewNop())
	assert.ErrorContains(t, err, "not provided")

	_, err = InitFirebase(context.Background(), filepath.Join(t.TempDir(), "missing.json"), zap.NewNop())
	assert.ErrorContains(t, err, "not found")
}
