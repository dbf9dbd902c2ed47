// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/bgplan/internal/meta"
)

const bashCompletionScript = `# bash completion for bgplan
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_bgplan()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "query list console columns completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--source -d --attrs -a --color -c --desc --endpoint --filter -f --format --json-path --no-index --output -o --padding --profile --region --reset --sort -s --titles -t --tldr"

    case "$cmd" in
        query|q)
            local opts="$common --count"
            ;;
        list|l)
            local opts="$common --add --remove --rm --load --save --pick"
            ;;
        console|c)
            local opts="$common"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts=""
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml names" -- "$cur") )
            return 0
            ;;
        --format)
            COMPREPLY=( $(compgen -W "auto csv json" -- "$cur") )
            return 0
            ;;
        --reset)
            COMPREPLY=( $(compgen -W "full empty" -- "$cur") )
            return 0
            ;;
        --sort|-s)
            COMPREPLY=( $(compgen -W "name id rating difficulty rank minPlayers maxPlayers minTime maxTime year" -- "$cur") )
            return 0
            ;;
        --source|-d|--data|--load|--save)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return 0
            ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
    return 0
}

complete -F _bgplan bgplan
`

const zshCompletionScript = `#compdef bgplan

_bgplan() {
  local -a cmds
  cmds=(
    'query:filter and sort a game collection'
    'list:build a list of games from a collection'
    'console:interactive planning console'
    'columns:list columns, their kinds, operators and aliases'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-d --source --data)'{-d,--source}'[game collection]:file:_files'
  '(-a --attrs)'{-a,--attrs}'[columns to include]:attrs'
  '(-c --color)'{-c,--color}'[enable colored text]'
  '--desc[sort descending]'
  '--endpoint[S3 endpoint override]:url'
  '*'{-f,--filter}'[filter expression]:expr'
  '--format[collection format]:format:(auto csv json)'
  '--json-path[path to the games array in JSON]:path'
  '--no-index[omit the position column]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json yaml names)'
  '--padding[spaces between columns]:n'
  '--profile[AWS profile]:profile'
  '--region[AWS region]:region'
  '--reset[what reset restores]:mode:(full empty)'
  '(-s --sort)'{-s,--sort}'[sort column]:column:(name id rating difficulty rank minPlayers maxPlayers minTime maxTime year)'
  '(-t --titles)'{-t,--titles}'[show titles]'
  '--tldr[show tldr page]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'bgplan commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    query|q)
      _arguments -C $common '--count[print match count]'
      ;;
    list|l)
      _arguments -C \
        $common \
        '*--add[add games from the view]:selection' \
        '*'{--remove,--rm}'[remove games from the list]:selection' \
        '--load[seed the list from a file]:file:_files' \
        '--save[write the list to a file]:file:_files' \
        '--pick[choose games interactively]'
      ;;
    console|c)
      _arguments -C $common
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _bgplan bgplan
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(stdout(cmd), bashCompletionScript)
	case "zsh":
		fmt.Fprint(stdout(cmd), zshCompletionScript)
	default:
		return errors.New("usage: bgplan completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "bgplan completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
