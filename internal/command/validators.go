// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/staranto/bgplan/internal/output"
	"github.com/staranto/bgplan/internal/planner"
	"github.com/staranto/bgplan/internal/source"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks combinations no single flag validator can see.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Int("padding") < 0 {
		return errors.New("--padding must not be negative")
	}
	return nil
}

func OutputValidator(value any) error {
	valid := output.Formats()
	s, _ := value.(string)
	if !slices.Contains(valid, s) {
		return fmt.Errorf("must be one of %v", valid)
	}
	return nil
}

func FormatValidator(value any) error {
	s, _ := value.(string)
	_, err := source.ParseFormat(s)
	return err
}

func ResetValidator(value any) error {
	s, _ := value.(string)
	_, err := planner.ParseResetMode(s)
	return err
}
