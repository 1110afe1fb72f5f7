package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/conventionalish/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("debería crear la configuración por defecto en un directorio", func(t *testing.T) {
		// arrange
		tmpDir := t.TempDir()

		// act
		config, err := LoadConfig(tmpDir)

		// assert
		require.NoError(t, err)
		assert.Equal(t, defaultLang, config.Language)
		assert.Equal(t, defaultMaxLength, config.MaxLength)
		assert.Nil(t, config.Types)

		expectedPath := filepath.Join(tmpDir, ".conventionalish", "config.json")
		assert.Equal(t, expectedPath, config.PathFile)
		assert.FileExists(t, expectedPath)
	})

	t.Run("debería leer la configuración ya creada", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := LoadConfig(tmpDir)
		require.NoError(t, err)

		config, err := LoadConfig(tmpDir)

		require.NoError(t, err)
		assert.Equal(t, defaultLang, config.Language)
	})

	t.Run("debería leer JSON", func(t *testing.T) {
		path := writeFile(t, "config.json", `{
			"language": "es",
			"max_length": 50,
			"types": [
				{"token": "feat", "label": "Nueva funcionalidad", "shortcut": "f", "bump": "minor"},
				{"token": "chore", "label": "Mantenimiento"}
			],
			"changelog_allow": ["chore"],
			"changelog_titles": {"feat": "Features"}
		}`)

		config, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "es", config.Language)
		assert.Equal(t, 50, config.MaxLength)
		assert.Len(t, config.Types, 2)
		assert.Equal(t, []string{"chore"}, config.ChangelogAllow)
		assert.Equal(t, map[string]string{"feat": "Features"}, config.ChangelogTitles)
		assert.Equal(t, path, config.PathFile)
	})

	t.Run("debería leer TOML", func(t *testing.T) {
		path := writeFile(t, "config.toml", `
language = "en"
max_length = 72

[[types]]
token = "fix"
label = "A bug fix"
shortcut = "x"
bump = "patch"
`)

		config, err := LoadConfig(path)

		require.NoError(t, err)
		require.Len(t, config.Types, 1)
		assert.Equal(t, TypeConfig{Token: "fix", Label: "A bug fix", Shortcut: "x", Bump: "patch"}, config.Types[0])
	})

	t.Run("debería leer YAML", func(t *testing.T) {
		path := writeFile(t, "config.yaml", `
language: en
max_length: 72
types:
  - token: feat
    label: A new feature
    shortcut: f
    bump: minor
changelog_titles:
  feat: Features
`)

		config, err := LoadConfig(path)

		require.NoError(t, err)
		require.Len(t, config.Types, 1)
		assert.Equal(t, "minor", config.Types[0].Bump)
		assert.Equal(t, "Features", config.ChangelogTitles["feat"])
	})

	t.Run("debería distinguir una lista vacía de tipos", func(t *testing.T) {
		path := writeFile(t, "config.json", `{"language": "en", "max_length": 72, "types": []}`)

		config, err := LoadConfig(path)

		require.NoError(t, err)
		assert.NotNil(t, config.Types)
		assert.Empty(t, config.Types)
	})

	t.Run("debería completar con valores por defecto las claves ausentes", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "types:\n  - token: feat\n    bump: minor\n")

		config, err := LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "en", config.Language)
		assert.Equal(t, 72, config.MaxLength)
		require.Len(t, config.Types, 1)
		assert.Equal(t, "feat", config.Types[0].Token)
	})

	t.Run("debería fallar si el archivo indicado no existe", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
		assert.ErrorIs(t, err, domainErrors.ErrConfigRead)
	})

	t.Run("debería rechazar formatos desconocidos", func(t *testing.T) {
		path := writeFile(t, "config.ini", "language=en")

		_, err := LoadConfig(path)

		assert.ErrorIs(t, err, domainErrors.ErrConfigFormat)
	})

	t.Run("debería manejar JSON malformado", func(t *testing.T) {
		path := writeFile(t, "config.json", "{malformed json")

		_, err := LoadConfig(path)

		require.Error(t, err)
		assert.ErrorIs(t, err, domainErrors.ErrConfigRead)
		assert.True(t, domainErrors.IsType(err, domainErrors.TypeConfiguration))
	})

	t.Run("debería manejar configuración inválida", func(t *testing.T) {
		path := writeFile(t, "config.json", `{"language": "fr", "max_length": -1}`)

		_, err := LoadConfig(path)

		assert.ErrorIs(t, err, domainErrors.ErrConfigInvalid)
	})
}

func TestSaveConfig(t *testing.T) {
	t.Run("debería validar la configuración antes de guardar", func(t *testing.T) {
		err := SaveConfig(&Config{Language: "", MaxLength: 0, PathFile: filepath.Join(t.TempDir(), "c.json")})

		assert.ErrorIs(t, err, domainErrors.ErrConfigInvalid)
	})

	t.Run("debería fallar sin ruta", func(t *testing.T) {
		err := SaveConfig(&Config{Language: "en", MaxLength: 72})

		assert.ErrorIs(t, err, domainErrors.ErrConfigWrite)
	})

	t.Run("debería guardar JSON correctamente", func(t *testing.T) {
		// arrange
		path := filepath.Join(t.TempDir(), "config.json")
		config := &Config{
			Language:  "es",
			MaxLength: 50,
			Types:     []TypeConfig{{Token: "feat", Label: "Feature", Shortcut: "f", Bump: "minor"}},
			PathFile:  path,
		}

		// act
		err := SaveConfig(config)

		// assert
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var saved Config
		require.NoError(t, json.Unmarshal(data, &saved))
		assert.Equal(t, config.Language, saved.Language)
		assert.Equal(t, config.Types, saved.Types)
		assert.Empty(t, saved.PathFile)
	})

	t.Run("debería guardar y releer TOML y YAML", func(t *testing.T) {
		for _, name := range []string{"config.toml", "config.yml"} {
			path := filepath.Join(t.TempDir(), name)
			config := &Config{
				Language:        "en",
				MaxLength:       64,
				Types:           []TypeConfig{{Token: "fix", Label: "Fix", Shortcut: "x", Bump: "patch"}},
				ChangelogTitles: map[string]string{"fix": "Bug Fixes"},
				PathFile:        path,
			}

			require.NoError(t, SaveConfig(config), name)
			loaded, err := LoadConfig(path)

			require.NoError(t, err, name)
			assert.Equal(t, config, loaded, name)
		}
	})
}

func TestSaveConfig_TypesPresence(t *testing.T) {
	for _, name := range []string{"config.json", "config.toml", "config.yaml"} {
		t.Run("debería conservar una lista vacía en "+name, func(t *testing.T) {
			// arrange
			path := writeFile(t, name, "")
			config := &Config{Language: "en", MaxLength: 72, Types: []TypeConfig{}, PathFile: path}

			// act
			require.NoError(t, SaveConfig(config))
			config.Language = "es"
			require.NoError(t, SaveConfig(config))
			loaded, err := LoadConfig(path)

			// assert
			require.NoError(t, err)
			assert.Equal(t, "es", loaded.Language)
			assert.NotNil(t, loaded.Types)
			assert.Empty(t, loaded.Types)
		})

		t.Run("debería omitir los tipos ausentes en "+name, func(t *testing.T) {
			path := writeFile(t, name, "")
			config := &Config{Language: "en", MaxLength: 72, PathFile: path}

			require.NoError(t, SaveConfig(config))
			loaded, err := LoadConfig(path)

			require.NoError(t, err)
			assert.Nil(t, loaded.Types)
		})
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr bool
	}{
		{
			name:    "configuración válida",
			config:  &Config{Language: "en", MaxLength: 72},
			wantErr: false,
		},
		{
			name:    "MaxLength inválido",
			config:  &Config{Language: "en", MaxLength: 0},
			wantErr: true,
		},
		{
			name:    "Language vacío",
			config:  &Config{Language: "", MaxLength: 72},
			wantErr: true,
		},
		{
			name:    "Language no soportado",
			config:  &Config{Language: "fr", MaxLength: 72},
			wantErr: true,
		},
		{
			name:    "tipo sin token",
			config:  &Config{Language: "en", MaxLength: 72, Types: []TypeConfig{{Label: "x"}}},
			wantErr: true,
		},
		{
			name:    "atajo de más de un carácter",
			config:  &Config{Language: "en", MaxLength: 72, Types: []TypeConfig{{Token: "feat", Shortcut: "fe"}}},
			wantErr: true,
		},
		{
			name:    "atajo unicode",
			config:  &Config{Language: "en", MaxLength: 72, Types: []TypeConfig{{Token: "feat", Shortcut: "ñ"}}},
			wantErr: false,
		},
		{
			name:    "bump desconocido",
			config:  &Config{Language: "en", MaxLength: 72, Types: []TypeConfig{{Token: "feat", Bump: "huge"}}},
			wantErr: true,
		},
		{
			name:    "título vacío",
			config:  &Config{Language: "en", MaxLength: 72, ChangelogTitles: map[string]string{"feat": ""}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfig(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_CommitTypes(t *testing.T) {
	t.Run("debería devolver nil sin tipos configurados", func(t *testing.T) {
		defs, err := (&Config{}).CommitTypes()

		require.NoError(t, err)
		assert.Nil(t, defs)
	})

	t.Run("debería convertir los niveles de bump", func(t *testing.T) {
		config := &Config{Types: []TypeConfig{
			{Token: "feat", Label: "Feature", Shortcut: "f", Bump: "MINOR"},
			{Token: "chore"},
		}}

		defs, err := config.CommitTypes()

		require.NoError(t, err)
		assert.Equal(t, []models.CommitTypeDefinition{
			{Token: "feat", Label: "Feature", Shortcut: "f", Bump: models.MinorBump},
			{Token: "chore", Bump: models.NoBump},
		}, defs)
	})

	t.Run("debería devolver una lista vacía para tipos vacíos", func(t *testing.T) {
		defs, err := (&Config{Types: []TypeConfig{}}).CommitTypes()

		require.NoError(t, err)
		assert.NotNil(t, defs)
		assert.Empty(t, defs)
	})

	t.Run("debería rechazar niveles desconocidos", func(t *testing.T) {
		_, err := (&Config{Types: []TypeConfig{{Token: "feat", Bump: "huge"}}}).CommitTypes()

		assert.ErrorIs(t, err, domainErrors.ErrInvalidBumpLevel)
	})
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal("No se pudo crear el archivo de prueba:", err)
	}
	return path
}
