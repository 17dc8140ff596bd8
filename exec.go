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
	"io"
	"os"
	"strings"

	"github.com/cybrota/avltree/ops"
)

// openScript opens a script file, "-" meaning stdin
func openScript(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("script file %s not found", path)
		}
		return nil, err
	}
	return file, nil
}

// runExec runs the script at scriptPath (if any) and then every line in
// lines against s, writing results to w
func runExec(s ops.Session, scriptPath string, lines []string, w io.Writer) error {
	if scriptPath == "" && len(lines) == 0 {
		return fmt.Errorf("nothing to execute: pass operations as arguments or use --file")
	}

	if scriptPath != "" {
		file, err := openScript(scriptPath)
		if err != nil {
			return err
		}
		defer file.Close()

		if err := ops.RunScript(s, file, w); err != nil {
			return fmt.Errorf("%s: %w", scriptPath, err)
		}
	}

	if len(lines) > 0 {
		if err := ops.RunScript(s, strings.NewReader(strings.Join(lines, "\n")), w); err != nil {
			return fmt.Errorf("arguments: %w", err)
		}
	}
	return nil
}
