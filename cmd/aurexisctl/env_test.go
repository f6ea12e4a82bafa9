package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const exampleEnv = `# Application
APP_ENV=development

# Storage (empty bucket disables uploads)
STORAGE_BUCKET=
ADMIN_EMAIL="admin@aurexis.test"
`

func writeExample(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	example := filepath.Join(dir, ".env.example")
	require.NoError(t, os.WriteFile(example, []byte(exampleEnv), 0o600))
	return example, filepath.Join(dir, ".env")
}

func TestWriteEnvFile_CopiesTemplateVerbatim(t *testing.T) {
	example, target := writeExample(t)

	values, err := writeEnvFile(example, target, nil)
	require.NoError(t, err)
	assert.Equal(t, "admin@aurexis.test", values["ADMIN_EMAIL"])
	assert.Empty(t, values["STORAGE_BUCKET"])

	written, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, exampleEnv, string(written))
}

func TestWriteEnvFile_PromptedValuesAreWritten(t *testing.T) {
	example, target := writeExample(t)

	_, err := writeEnvFile(example, target, func(values map[string]string) error {
		values["STORAGE_BUCKET"] = "aurexis-media"
		return nil
	})
	require.NoError(t, err)

	values, err := godotenv.Read(target)
	require.NoError(t, err)
	assert.Equal(t, "aurexis-media", values["STORAGE_BUCKET"])
	assert.Equal(t, "development", values["APP_ENV"])
}

func TestWriteEnvFile_MissingTemplate(t *testing.T) {
	dir := t.TempDir()

	_, err := writeEnvFile(filepath.Join(dir, "nope"), filepath.Join(dir, ".env"), nil)
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, ".env"))
}
