// Package config holds app-wide codec defaults unmarshalled from
// Viper (an optional .seqio.yaml in the working directory or home).
// Command-line flags override anything set here.
package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"

	"seqio-core/fasta"
)

// Config are the user-tunable codec defaults.
type Config struct {
	// wrap column for FASTA output
	Width int `mapstructure:"width"`

	// sequence alphabet: dna, rna or protein
	Alphabet string `mapstructure:"alphabet"`

	// pass out-of-alphabet symbols through instead of failing
	Lenient bool `mapstructure:"lenient"`
}

// Load reads defaults from the working directory and the home
// directory. A missing config file is not an error.
func Load() (Config, error) {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return LoadFrom(dirs...)
}

// LoadFrom reads a .seqio.yaml from the first of dirs that has one.
func LoadFrom(dirs ...string) (Config, error) {
	v := viper.New()
	v.SetConfigName(".seqio")
	v.SetConfigType("yaml")
	for _, d := range dirs {
		v.AddConfigPath(d)
	}
	v.SetDefault("width", fasta.DefaultWidth)
	v.SetDefault("alphabet", "dna")
	v.SetDefault("lenient", false)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, err
	}
	return c, nil
}
