package cfg

import (
	_ "embed"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/KimNorgaard/go-kv3"
	"github.com/KimNorgaard/go-kv3/internal/blueprint"
)

//go:embed default.yaml
var defCfgBytes []byte

// EnvPrefix is the prefix of environment variables overriding config values.
// Nested keys are separated by a double underscore, e.g. KVGEN_OUTPUT__DIR.
const EnvPrefix = "KVGEN_"

// Root represents root settings of the program
type Root struct {
	// Header holds the default header fields
	Header blueprint.HeaderSpec `koanf:"header"`

	// Escaping is the string escaping policy: "newlines" or "none"
	Escaping string `koanf:"escaping"`

	// Indent is the number of spaces per nesting level
	Indent int `koanf:"indent"`

	Output Output `koanf:"output"`

	// Workers is the number of blueprints rendered in parallel
	Workers int `koanf:"workers"`
}

// Output represents output settings of the program
type Output struct {
	// Dir is the directory documents are written to. Empty means stdout.
	Dir string `koanf:"dir"`

	// Extension is appended to the blueprint base name
	Extension string `koanf:"extension"`
}

// Init returns config built from the embedded defaults, the file at <path> if it is not empty and environment
// variables, in that order of precedence.
func Init(log logrus.FieldLogger, path string) (Root, error) {
	ko := koanf.New(".")

	var root Root
	if err := ko.Load(rawbytes.Provider(defCfgBytes), yaml.Parser()); err != nil {
		return root, errors.Wrap(err, "Load default config")
	}

	if path != "" {
		log.WithField("path", path).Info("Reading program config")
		if err := ko.Load(file.Provider(path), yaml.Parser()); err != nil {
			return root, errors.Wrap(err, "Load config")
		}
	}

	envToKey := func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}
	if err := ko.Load(env.Provider(EnvPrefix, ".", envToKey), nil); err != nil {
		return root, errors.Wrap(err, "Load environment")
	}

	err := ko.UnmarshalWithConf("", &root, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true,
			Result:           &root,
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return root, errors.Wrap(err, "Decode config")
	}

	if err := root.Validate(); err != nil {
		return root, err
	}
	log.WithField("config", root).Debug("Config loaded")
	return root, nil
}

// Validate returns an error if any setting in <r> is out of range
func (r Root) Validate() error {
	if _, err := r.Header.Build(); err != nil {
		return errors.Wrap(err, "Validate header")
	}
	if _, err := ParseEscaping(r.Escaping); err != nil {
		return err
	}
	if r.Indent < 0 {
		return errors.Newf("Validate config: indent must not be negative, got %d", r.Indent)
	}
	if r.Workers < 1 {
		return errors.Newf("Validate config: workers must be at least 1, got %d", r.Workers)
	}
	return nil
}

// EncodeOptions returns the encoder options described by <r>
func (r Root) EncodeOptions() ([]kv3.Option, error) {
	esc, err := ParseEscaping(r.Escaping)
	if err != nil {
		return nil, err
	}
	return []kv3.Option{kv3.Indent(r.Indent), kv3.StringEscaping(esc)}, nil
}

// ParseEscaping returns the escaping policy named <s>
func ParseEscaping(s string) (kv3.Escaping, error) {
	switch s {
	case kv3.EscapeNewlines.String():
		return kv3.EscapeNewlines, nil
	case kv3.EscapeNone.String():
		return kv3.EscapeNone, nil
	}
	return 0, errors.Newf("Validate config: unknown escaping policy %q, expected newlines or none", s)
}
