package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a yaml config file over the defaults and applies environment
// overrides. A missing file is not an error; the defaults plus environment
// are used instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv lets secrets stay out of the config file.
func (c *Config) applyEnv() {
	if v := os.Getenv("FINOV_LLM_API_KEY"); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv("FINOV_EMBEDDING_API_KEY"); v != "" {
		c.Embedding.APIKey = v
	}
	// GROQ_API_KEY covers both clients when they talk to the same
	// OpenAI-compatible endpoint.
	if v := os.Getenv("GROQ_API_KEY"); v != "" {
		if c.LLM.APIKey == "" {
			c.LLM.APIKey = v
		}
		if c.Embedding.APIKey == "" {
			c.Embedding.APIKey = v
		}
	}
	if v := os.Getenv("MILVUS_USERNAME"); v != "" {
		c.VectorDB.Username = v
	}
	if v := os.Getenv("MILVUS_PASSWORD"); v != "" {
		c.VectorDB.Password = v
	}
}
