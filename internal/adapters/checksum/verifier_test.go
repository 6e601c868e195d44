package checksum_test

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/mason/internal/adapters/checksum"
	"go.trai.ch/mason/internal/core/domain"
)

func writeFile(t *testing.T, name, content string) (path, digest string) {
	t.Helper()
	path = filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	sum := sha256.Sum256([]byte(content))
	return path, hex.EncodeToString(sum[:])
}

func TestVerifier_Verify(t *testing.T) {
	verifier := checksum.NewVerifier()

	t.Run("accepts a matching digest", func(t *testing.T) {
		path, digest := writeFile(t, "pism-2.0.2.tar.gz", "archive content")

		require.NoError(t, verifier.Verify(context.Background(), path, digest))
	})

	t.Run("rejects a mismatched digest", func(t *testing.T) {
		path, _ := writeFile(t, "pism-2.0.2.tar.gz", "archive content")

		err := verifier.Verify(context.Background(), path, "0000000000000000000000000000000000000000000000000000000000000000")
		require.ErrorContains(t, err, domain.ErrChecksumMismatch.Error())
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		err := verifier.Verify(context.Background(), filepath.Join(t.TempDir(), "nope"), "00")
		require.ErrorContains(t, err, "failed to open file")
	})

	t.Run("fails on a canceled context", func(t *testing.T) {
		path, digest := writeFile(t, "archive", "content")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.ErrorIs(t, verifier.Verify(ctx, path, digest), context.Canceled)
	})
}

func TestVerifier_VerifyAll(t *testing.T) {
	verifier := checksum.NewVerifier()

	t.Run("verifies several files", func(t *testing.T) {
		pathA, digestA := writeFile(t, "a.tar.gz", "first")
		pathB, digestB := writeFile(t, "b.tar.gz", "second")

		err := verifier.VerifyAll(context.Background(), map[string]string{
			pathA: digestA,
			pathB: digestB,
		})
		require.NoError(t, err)
	})

	t.Run("fails when one file mismatches", func(t *testing.T) {
		pathA, digestA := writeFile(t, "a.tar.gz", "first")
		pathB, _ := writeFile(t, "b.tar.gz", "second")

		err := verifier.VerifyAll(context.Background(), map[string]string{
			pathA: digestA,
			pathB: "0000000000000000000000000000000000000000000000000000000000000000",
		})
		require.ErrorContains(t, err, domain.ErrChecksumMismatch.Error())
	})
}
