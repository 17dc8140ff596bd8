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

package ops

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// RunScript executes r line by line against s, echoing each line as
// "> line" followed by its result. Blank lines and lines starting with '#'
// are skipped. It stops at the first failing line.
func RunScript(s Session, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	// Long insert lines are common when a script seeds a big tree
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		out, err := s.Exec(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if _, err := fmt.Fprintf(w, "> %s\n%s\n", line, out); err != nil {
			return err
		}
	}

	return scanner.Err()
}
