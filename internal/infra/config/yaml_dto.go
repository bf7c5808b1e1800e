package config

import "gopkg.in/yaml.v3"

// FileName is the workspace marker and configuration file.
const FileName = "carlens.yaml"

type yamlConfig struct {
	Carlens yamlCarlens `yaml:"carlens"`
}

type yamlCarlens struct {
	Data struct {
		Brands   string `yaml:"brands"`
		Vehicles string `yaml:"vehicles"`
	} `yaml:"data"`

	Output struct {
		Format   string `yaml:"format"`
		Currency string `yaml:"currency"`
	} `yaml:"output"`

	Query struct {
		Currency string `yaml:"currency"`
		// TypeCurrency is kept as a node so mapping order survives decoding.
		TypeCurrency yaml.Node `yaml:"type_currency"`
		Ascending    *bool     `yaml:"ascending"`
	} `yaml:"query"`

	Results struct {
		Dir  string `yaml:"dir"`
		Save *bool  `yaml:"save"`
	} `yaml:"results"`
}
