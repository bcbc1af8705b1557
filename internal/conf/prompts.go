package conf

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// PromptsConfig contains prompt templates loaded from YAML
type PromptsConfig struct {
	Composer ComposerPrompts `yaml:"composer"`
	Chat     ChatPrompts     `yaml:"chat"`
}

// ComposerPrompts contains caption/hashtag generation templates
type ComposerPrompts struct {
	CaptionPrompt string `yaml:"caption_prompt"`
	HashtagPrompt string `yaml:"hashtag_prompt"`
}

// ChatPrompts contains conversational prompts
type ChatPrompts struct {
	SystemPrompt string `yaml:"system_prompt"`
}

// LoadPromptsConfig loads prompt templates from a YAML file. Missing file or
// empty fields fall back to compiled-in defaults.
func LoadPromptsConfig(configPath string) (*PromptsConfig, error) {
	paths := []string{configPath}
	if configPath == "" {
		paths = []string{
			"configs/prompts.yaml",
			"./configs/prompts.yaml",
		}
		if wd, err := os.Getwd(); err == nil {
			paths = append(paths, filepath.Join(wd, "configs", "prompts.yaml"))
		}
	}

	var data []byte
	var loadedPath string
	for _, p := range paths {
		if p == "" {
			continue
		}
		if b, err := os.ReadFile(p); err == nil {
			data = b
			loadedPath = p
			break
		}
	}

	if data == nil {
		fmt.Println("[Config] No prompts.yaml found, using defaults")
		return &PromptsConfig{}, nil
	}

	var cfg PromptsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &PromptsConfig{}, fmt.Errorf("parse prompts config: %w", err)
	}

	fmt.Printf("[Config] Loading prompts from: %s\n", loadedPath)
	return &cfg, nil
}
