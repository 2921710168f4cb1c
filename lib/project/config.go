package project

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/cslim-lang/cslim/lib/logger"
	"github.com/cslim-lang/cslim/util"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ConfigName is the base name of the project file, cslim.yaml.
const ConfigName = "cslim"

const FileName = ConfigName + ".yaml"

type Conf struct {
	Name        string        `yaml:"name" mapstructure:"name"`
	Description string        `yaml:"description,omitempty" mapstructure:"description"`
	Version     string        `yaml:"version" mapstructure:"version"`
	Sources     []string      `yaml:"sources" mapstructure:"sources"`
	Verbose     bool          `yaml:"verbose" mapstructure:"verbose"`
	Trace       TraceConf     `yaml:"trace" mapstructure:"trace"`
	Log         logger.Config `yaml:"log" mapstructure:"log"`

	// Dir is the directory the configuration was loaded from.
	Dir string `yaml:"-" mapstructure:"-"`
}

type TraceConf struct {
	Tokens     bool `yaml:"tokens" mapstructure:"tokens"`
	Statements bool `yaml:"statements" mapstructure:"statements"`
}

func (c *Conf) CreateDefault(name string) {
	if name == "." || name == "" {
		name = "NewProject"
	}
	c.Name = name
	c.Description = "A new C-Slim project"
	c.Version = "1.0.0"
	c.Sources = []string{"src/main.cs"}
	c.Log = *logger.DefaultConfig()
}

// Save writes the configuration as YAML. An existing file is only replaced
// when overwrite is set or the user agrees to it.
func (c *Conf) Save(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil {
		if !overwrite && !util.PromptYN(path+" already exists. Overwrite?", false) {
			return nil
		}
	}

	yml, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, yml, 0644)
}

// SourcePaths returns the configured sources resolved against Dir.
func (c *Conf) SourcePaths() []string {
	paths := make([]string, len(c.Sources))
	for i, src := range c.Sources {
		if filepath.IsAbs(src) || c.Dir == "" {
			paths[i] = src
		} else {
			paths[i] = filepath.Join(c.Dir, src)
		}
	}
	return paths
}

// GetConf loads cslim.yaml from dir. Values can be overridden through
// CSLIM_ prefixed environment variables, e.g. CSLIM_LOG_LEVEL=debug.
func GetConf(dir string) (Conf, error) {
	v := viper.New()
	v.SetConfigName(ConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	v.SetEnvPrefix("CSLIM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := logger.DefaultConfig()
	v.SetDefault("verbose", false)
	v.SetDefault("trace.tokens", false)
	v.SetDefault("trace.statements", false)
	v.SetDefault("log.level", def.Level)
	v.SetDefault("log.file", def.FileName)
	v.SetDefault("log.maxSize", def.MaxSize)
	v.SetDefault("log.maxAge", def.MaxAge)
	v.SetDefault("log.maxBackups", def.MaxBackups)
	v.SetDefault("log.compress", def.Compress)

	if err := v.ReadInConfig(); err != nil {
		return Conf{}, err
	}

	var conf Conf
	if err := v.Unmarshal(&conf); err != nil {
		return Conf{}, err
	}
	conf.Dir = dir
	return conf, nil
}

// IsNotFound reports whether err means there is no cslim.yaml to load.
func IsNotFound(err error) bool {
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf)
}
