// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cybrota/avltree/ops"
)

const configFileName = ".avltree.yaml"

type TreeConfig struct {
	KeyType string `yaml:"key_type"`
}

type StressConfig struct {
	Operations int    `yaml:"operations"`
	KeySpace   int    `yaml:"key_space"`
	Seed       uint64 `yaml:"seed"`
}

type DisplayConfig struct {
	WordWrap int `yaml:"word_wrap"`
}

type Config struct {
	Tree    TreeConfig    `yaml:"tree"`
	Stress  StressConfig  `yaml:"stress"`
	Display DisplayConfig `yaml:"display"`
}

var defaultConfig = Config{
	Tree: TreeConfig{
		KeyType: ops.KeyTypeInt,
	},
	Stress: StressConfig{
		Operations: 10000,
		KeySpace:   1024,
		Seed:       1,
	},
	Display: DisplayConfig{
		WordWrap: 72,
	},
}

// LoadConfig reads ~/.avltree.yaml. A missing or unreadable file yields
// the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return defaults(), fmt.Errorf("failed to parse %s: %v", configPath, err)
	}

	config.fillDefaults()
	return &config, nil
}

func defaults() *Config {
	c := defaultConfig
	return &c
}

// fillDefaults replaces zero values left by a partial config file
func (c *Config) fillDefaults() {
	if c.Tree.KeyType == "" {
		c.Tree.KeyType = defaultConfig.Tree.KeyType
	}
	if c.Stress.Operations <= 0 {
		c.Stress.Operations = defaultConfig.Stress.Operations
	}
	if c.Stress.KeySpace <= 0 {
		c.Stress.KeySpace = defaultConfig.Stress.KeySpace
	}
	if c.Display.WordWrap <= 0 {
		c.Display.WordWrap = defaultConfig.Display.WordWrap
	}
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Printf("🔧 avltree Configuration Settings\n")
	fmt.Printf("═══════════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s%s%s\n", Info, configPath, Reset)
	} else {
		fmt.Printf("📍 Config file: %s%s%s (newly created)\n", Info, configPath, Reset)
	}

	fmt.Printf("📊 Current settings:\n\n")

	fmt.Printf("🌳 %sTree:%s\n", Green, Reset)
	fmt.Printf("  • %skey_type%s: %s\n", Green, Reset, config.Tree.KeyType)
	fmt.Printf("    Keys are parsed as %s (one of %s, %s, %s)\n\n", config.Tree.KeyType, ops.KeyTypeInt, ops.KeyTypeFloat, ops.KeyTypeString)

	fmt.Printf("🎲 %sStress:%s\n", Green, Reset)
	fmt.Printf("  • %soperations%s: %d\n", Green, Reset, config.Stress.Operations)
	fmt.Printf("  • %skey_space%s: %d\n", Green, Reset, config.Stress.KeySpace)
	fmt.Printf("  • %sseed%s: %d\n\n", Green, Reset, config.Stress.Seed)

	fmt.Printf("🖥  %sDisplay:%s\n", Green, Reset)
	fmt.Printf("  • %sword_wrap%s: %d\n\n", Green, Reset, config.Display.WordWrap)

	fmt.Printf("💡 Command line flags override these values, e.g. avltree exec -k string ...\n")
}
