// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// RunScript feeds r to s one line at a time, writing each result to w. Lines
// starting with "#" are comments. Command errors are written and do not stop
// the script; exit does.
func RunScript(s *Session, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		out, err := s.Exec(line)
		if errors.Is(err, ErrExit) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Fprintln(w, out)
		}
	}
	return scanner.Err()
}
