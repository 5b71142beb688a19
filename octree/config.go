package octree

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"go.viam.com/spatialindex/logging"
)

// Config describes how an octree is built.
type Config struct {
	// MaxLeafEntries is how many entries a leaf holds before it subdivides. Zero means the default
	// of one.
	MaxLeafEntries int `json:"max_leaf_entries,omitempty"`
	// LogLevel is the level of the octree's sublogger, one of debug, info, warn or error. Empty
	// keeps the level of the logger given to NewFromConfig.
	LogLevel string `json:"log_level,omitempty"`
}

// Validate ensures all parts of the config are valid.
func (cfg *Config) Validate(path string) error {
	var errs error
	if cfg.MaxLeafEntries < 0 {
		errs = multierr.Append(errs,
			errors.Errorf("%s: max_leaf_entries must be non-negative, got %d", path, cfg.MaxLeafEntries))
	}
	if cfg.LogLevel != "" {
		if _, err := logging.LevelFromString(cfg.LogLevel); err != nil {
			errs = multierr.Append(errs, errors.Wrapf(err, "%s: log_level", path))
		}
	}
	return errs
}

// SplitPolicy returns the split policy the config describes.
func (cfg *Config) SplitPolicy() SplitPolicy {
	if cfg.MaxLeafEntries == 0 {
		return DefaultSplitPolicy
	}
	return MaxElements(cfg.MaxLeafEntries)
}

// NewConfigFromAttributes decodes an attribute map, such as one read from a JSON document, into a
// Config. Unknown attributes are an error.
func NewConfigFromAttributes(attributes map[string]interface{}) (*Config, error) {
	var conf Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      &conf,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "error decoding octree config")
	}
	return &conf, nil
}

// NewFromConfig validates cfg and creates an empty octree from it, logging to a sublogger of
// logger.
func NewFromConfig[T any](cfg *Config, logger logging.Logger) (*Octree[T], error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate("octree"); err != nil {
		return nil, err
	}

	if logger == nil {
		logger = logging.NewBlankLogger("")
		logger.SetLevel(logging.WARN)
	}
	logger = logger.Sublogger("octree")
	if cfg.LogLevel != "" {
		level, err := logging.LevelFromString(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		logger.SetLevel(level)
	}

	return New[T](WithLogger(logger), WithSplitPolicy(cfg.SplitPolicy())), nil
}
