package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/conventionalish/internal/errors"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type (
	Config struct {
		Language  string `json:"language" yaml:"language" toml:"language" validate:"required,oneof=en es"`
		MaxLength int    `json:"max_length" yaml:"max_length" toml:"max_length" validate:"gt=0"`

		// Types replaces the default registry when present, even if empty.
		Types []TypeConfig `json:"types" yaml:"types" toml:"types" validate:"dive"`

		ChangelogAllow  []string          `json:"changelog_allow,omitempty" yaml:"changelog_allow,omitempty" toml:"changelog_allow,omitempty" validate:"dive,required"`
		ChangelogTitles map[string]string `json:"changelog_titles,omitempty" yaml:"changelog_titles,omitempty" toml:"changelog_titles,omitempty" validate:"dive,keys,required,endkeys,required"`

		PathFile string `json:"-" yaml:"-" toml:"-"`
	}

	TypeConfig struct {
		Token    string `json:"token" yaml:"token" toml:"token" validate:"required"`
		Label    string `json:"label" yaml:"label" toml:"label"`
		Shortcut string `json:"shortcut,omitempty" yaml:"shortcut,omitempty" toml:"shortcut,omitempty" validate:"omitempty,len=1"`
		Bump     string `json:"bump,omitempty" yaml:"bump,omitempty" toml:"bump,omitempty" validate:"omitempty,oneof=major minor patch none"`
	}

	// document is the file layout. A nil Types pointer leaves the key out,
	// a pointer to an empty list writes it as [].
	document struct {
		Language        string            `json:"language" yaml:"language" toml:"language"`
		MaxLength       int               `json:"max_length" yaml:"max_length" toml:"max_length"`
		Types           *[]TypeConfig     `json:"types,omitempty" yaml:"types,omitempty" toml:"types,omitempty"`
		ChangelogAllow  []string          `json:"changelog_allow,omitempty" yaml:"changelog_allow,omitempty" toml:"changelog_allow,omitempty"`
		ChangelogTitles map[string]string `json:"changelog_titles,omitempty" yaml:"changelog_titles,omitempty" toml:"changelog_titles,omitempty"`
	}
)

const (
	defaultLang      = "en"
	defaultMaxLength = 72
	configDirName    = ".conventionalish"
	configFileName   = "config.json"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads a .json, .toml, .yaml or .yml file. Any other path is
// taken as a directory holding .conventionalish/config.json, which is
// created with defaults when missing.
func LoadConfig(path string) (*Config, error) {
	configPath := path
	if !isConfigFile(path) {
		if filepath.Ext(path) != "" && !isDir(path) {
			return nil, domainErrors.ErrConfigFormat.WithContext("path", path)
		}
		configPath = filepath.Join(path, configDirName, configFileName)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if isConfigFile(path) {
			return nil, domainErrors.ErrConfigRead.WithError(err).WithContext("path", configPath)
		}
		return createDefaultConfig(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, domainErrors.ErrConfigRead.WithError(err).WithContext("path", configPath)
	}

	config, err := decode(configPath, data)
	if err != nil {
		return nil, err
	}
	config.PathFile = configPath

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// decode layers the file over the defaults, so a file may set only the keys
// it overrides.
func decode(path string, data []byte) (*Config, error) {
	config := defaultConfig()

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(data, config)
	case ".toml":
		_, err = toml.Decode(string(data), config)
	case ".yaml", ".yml":
		err = yaml.NewDecoder(bytes.NewReader(data)).Decode(config)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return nil, domainErrors.ErrConfigFormat.WithContext("path", path)
	}
	if err != nil {
		return nil, domainErrors.ErrConfigRead.WithError(err).WithContext("path", path)
	}

	return config, nil
}

func createDefaultConfig(path string) (*Config, error) {
	config := defaultConfig()
	config.PathFile = path

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, domainErrors.ErrConfigWrite.WithError(err).WithContext("path", path)
	}

	if err := write(config); err != nil {
		return nil, err
	}

	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		Language:  defaultLang,
		MaxLength: defaultMaxLength,
	}
}

// SaveConfig validates config and writes it to PathFile in the format its
// extension names.
func SaveConfig(config *Config) error {
	if err := validateConfig(config); err != nil {
		return err
	}

	if config.PathFile == "" {
		return domainErrors.ErrConfigWrite.WithError(os.ErrInvalid).WithContext("path", "")
	}

	return write(config)
}

func write(config *Config) error {
	var (
		data []byte
		err  error
	)

	doc := newDocument(config)
	switch strings.ToLower(filepath.Ext(config.PathFile)) {
	case ".json":
		data, err = json.MarshalIndent(doc, "", "  ")
	case ".toml":
		var buf bytes.Buffer
		err = toml.NewEncoder(&buf).Encode(doc)
		data = buf.Bytes()
	case ".yaml", ".yml":
		data, err = yaml.Marshal(doc)
	default:
		return domainErrors.ErrConfigFormat.WithContext("path", config.PathFile)
	}
	if err != nil {
		return domainErrors.ErrConfigWrite.WithError(err).WithContext("path", config.PathFile)
	}

	if err := os.WriteFile(config.PathFile, data, 0644); err != nil {
		return domainErrors.ErrConfigWrite.WithError(err).WithContext("path", config.PathFile)
	}

	return nil
}

func newDocument(config *Config) document {
	doc := document{
		Language:        config.Language,
		MaxLength:       config.MaxLength,
		ChangelogAllow:  config.ChangelogAllow,
		ChangelogTitles: config.ChangelogTitles,
	}
	if config.Types != nil {
		types := config.Types
		doc.Types = &types
	}
	return doc
}

func validateConfig(config *Config) error {
	if err := validate.Struct(config); err != nil {
		return domainErrors.ErrConfigInvalid.WithError(err)
	}
	return nil
}

// CommitTypes converts the configured types into registry entries. A nil
// Types field yields nil so callers fall back to the defaults.
func (c *Config) CommitTypes() ([]models.CommitTypeDefinition, error) {
	if c.Types == nil {
		return nil, nil
	}

	defs := make([]models.CommitTypeDefinition, 0, len(c.Types))
	for i, t := range c.Types {
		level, err := models.ParseBumpLevel(t.Bump)
		if err != nil {
			return nil, domainErrors.ErrInvalidBumpLevel.
				WithError(err).
				WithContext("token", t.Token).
				WithContext("index", i)
		}
		defs = append(defs, models.CommitTypeDefinition{
			Token:    t.Token,
			Label:    t.Label,
			Shortcut: t.Shortcut,
			Bump:     level,
		})
	}
	return defs, nil
}

func isConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".toml", ".yaml", ".yml":
		return true
	}
	return false
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
