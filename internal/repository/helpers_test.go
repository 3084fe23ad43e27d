package repository_test

import (
	"testing"

	"github.com/UnknownOlympus/mnemosyne/internal/metrics"
	"github.com/UnknownOlympus/mnemosyne/internal/repository"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const dataDir = "/data"

// newMemFs returns an in-memory filesystem holding the given documents under dataDir.
func newMemFs(t *testing.T, documents map[string]string) afero.Fs {
	t.Helper()

	memFs := afero.NewMemMapFs()
	require.NoError(t, memFs.MkdirAll(dataDir, 0o755))
	for name, content := range documents {
		require.NoError(t, afero.WriteFile(memFs, dataDir+"/"+name, []byte(content), 0o644))
	}

	return memFs
}

func newMemRepo(t *testing.T, documents map[string]string, m *metrics.Metrics) *repository.Repository {
	t.Helper()

	source := repository.NewSource(newMemFs(t, documents), dataDir)

	return repository.New(source, repository.DefaultDocuments(), m)
}
