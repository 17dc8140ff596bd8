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
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want defaults %+v", *config, defaultConfig)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := writeConfig(t, "tree:\n  key_type: string\nstress:\n  seed: 42\n")

	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if config.Tree.KeyType != "string" {
		t.Errorf("KeyType = %q; want string", config.Tree.KeyType)
	}
	if config.Stress.Seed != 42 {
		t.Errorf("Seed = %d; want 42", config.Stress.Seed)
	}
	if config.Stress.Operations != defaultConfig.Stress.Operations || config.Stress.KeySpace != defaultConfig.Stress.KeySpace {
		t.Errorf("unset stress values should fall back to defaults, got %+v", config.Stress)
	}
	if config.Display.WordWrap != defaultConfig.Display.WordWrap {
		t.Errorf("WordWrap = %d; want %d", config.Display.WordWrap, defaultConfig.Display.WordWrap)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "tree: [unterminated\n")

	config, err := loadConfigFrom(path)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if config == nil || *config != defaultConfig {
		t.Errorf("a broken file should still yield defaults, got %+v", config)
	}
}

func TestCreateDefaultConfigFileRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatalf("createDefaultConfigFile: %v", err)
	}

	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *config != defaultConfig {
		t.Errorf("config = %+v; want %+v", *config, defaultConfig)
	}
}

func TestDefaultsAreCopies(t *testing.T) {
	c := defaults()
	c.Tree.KeyType = "float"
	if defaultConfig.Tree.KeyType != "int" {
		t.Error("modifying defaults() must not change defaultConfig")
	}
}
