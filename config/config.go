package config

import (
	// Stdlib
	"bytes"
	"errors"
	"io/ioutil"
	"os"
	"text/template"

	// Internal
	"github.com/salsaflow/release-bump/errs"

	// Other
	"gopkg.in/yaml.v2"
)

const (
	// LocalConfigFilename is the filename of the configuration file
	// that represents local project-specific configuration.
	//
	// This file is expected to be placed in the working directory.
	LocalConfigFilename = ".release-bump.yml"

	DefaultManifest      = "setup.py"
	DefaultTagPrefix     = "v"
	DefaultCommitMessage = "New release: {{.Tag}}"
)

// Config represents the local configuration file content.
type Config struct {
	Manifest          string `yaml:"manifest"`
	TagPrefix         string `yaml:"tag_prefix"`
	CommitMessage     string `yaml:"commit_message"`
	AnnotatedTags     bool   `yaml:"annotated_tags"`
	RollbackOnFailure bool   `yaml:"rollback_on_failure"`

	commitTemplate *template.Template
}

// CommitMessageData is passed to the commit message template.
type CommitMessageData struct {
	Tag             string
	Version         string
	PreviousVersion string
}

func Default() *Config {
	config := &Config{}
	config.fillDefaults()
	return config
}

func (config *Config) fillDefaults() {
	if config.Manifest == "" {
		config.Manifest = DefaultManifest
	}
	// An empty tag prefix falls back to the default.
	if config.TagPrefix == "" {
		config.TagPrefix = DefaultTagPrefix
	}
	if config.CommitMessage == "" {
		config.CommitMessage = DefaultCommitMessage
	}
}

// Validate checks the configuration and compiles the commit message template.
func (config *Config) Validate() error {
	task := "Validate the configuration"
	if config.Manifest == "" {
		return errs.NewError(task, errors.New("manifest path is empty"))
	}

	t, err := template.New("commit_message").Parse(config.CommitMessage)
	if err != nil {
		return errs.NewErrorWithHint(task, err,
			"Make sure commit_message is a valid Go template, e.g. 'New release: {{.Tag}}'\n")
	}
	config.commitTemplate = t
	return nil
}

// FormatCommitMessage renders the commit message template.
func (config *Config) FormatCommitMessage(data *CommitMessageData) (string, error) {
	task := "Format the commit message"
	if config.commitTemplate == nil {
		if err := config.Validate(); err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer
	if err := config.commitTemplate.Execute(&buf, data); err != nil {
		return "", errs.NewError(task, err)
	}
	return buf.String(), nil
}

// Load reads the configuration file at the given path.
// A missing file is not an error, the defaults are used in that case.
func Load(path string) (*Config, error) {
	task := "Read the local config file"
	content, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errs.NewError(task, err)
	}
	return Parse(content)
}

// Parse parses the YAML configuration and fills in the defaults.
func Parse(content []byte) (*Config, error) {
	task := "Unmarshal the local config file"
	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, errs.NewErrorWithHint(
			task, err, "Make sure the configuration file is valid YAML\n")
	}
	config.fillDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}
