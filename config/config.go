package config

import (
	"io/ioutil"

	yaml "gopkg.in/yaml.v3"
)

type Config struct {
	Addr           string
	UserAgent      string `yaml:"agent"`
	TimeoutSeconds int    `yaml:"timeoutseconds"`
	Proxies        []string
	IgnoreRobots   bool
}

func Default() *Config {
	return &Config{
		Addr:           ":8080",
		UserAgent:      "seolens/1.0 (+https://github.com/seolens/seolens)",
		TimeoutSeconds: 15,
	}
}

func Load(yamlBytes []byte) (conf *Config, err error) {
	conf = Default()
	errUnmarshal := yaml.Unmarshal(yamlBytes, &conf)
	if errUnmarshal != nil {
		return nil, errUnmarshal
	}
	return conf, nil
}

func Get(filename string) (conf *Config, err error) {
	yamlBytes, errRead := ioutil.ReadFile(filename)
	if errRead != nil {
		return nil, errRead
	}
	return Load(yamlBytes)
}
