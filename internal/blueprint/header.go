package blueprint

import "github.com/KimNorgaard/go-kv3"

// HeaderSpec holds header settings as written in blueprints and config
// files. Empty fields mean "use the default".
type HeaderSpec struct {
	Family          string `yaml:"family" koanf:"family"`
	Encoding        string `yaml:"encoding" koanf:"encoding"`
	EncodingVersion string `yaml:"encoding_version" koanf:"encoding_version"`
	Format          string `yaml:"format" koanf:"format"`
	FormatVersion   string `yaml:"format_version" koanf:"format_version"`
}

// Merge returns s with every non-empty field of over applied on top.
func (s HeaderSpec) Merge(over HeaderSpec) HeaderSpec {
	pick := func(base, o string) string {
		if o != "" {
			return o
		}
		return base
	}
	return HeaderSpec{
		Family:          pick(s.Family, over.Family),
		Encoding:        pick(s.Encoding, over.Encoding),
		EncodingVersion: pick(s.EncodingVersion, over.EncodingVersion),
		Format:          pick(s.Format, over.Format),
		FormatVersion:   pick(s.FormatVersion, over.FormatVersion),
	}
}

// Build returns the header described by s. An empty family means kv3.
func (s HeaderSpec) Build() (*kv3.Header, error) {
	family := kv3.FamilyKV3
	if s.Family != "" {
		f, err := kv3.ParseFamily(s.Family)
		if err != nil {
			return nil, err
		}
		family = f
	}

	var opts []kv3.HeaderOption
	if s.Encoding != "" {
		opts = append(opts, kv3.WithEncoding(s.Encoding))
	}
	if s.Format != "" {
		opts = append(opts, kv3.WithFormat(s.Format))
	}
	opts = append(opts,
		kv3.WithEncodingVersion(s.EncodingVersion),
		kv3.WithFormatVersion(s.FormatVersion),
	)
	return kv3.NewHeader(family, opts...)
}
