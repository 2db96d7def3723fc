// SPDX-License-Identifier: MPL-2.0

package launch

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v4/process"
)

type (
	// ProcessLister returns the names of running processes.
	ProcessLister interface {
		ProcessNames(ctx context.Context) ([]string, error)
	}

	// SystemProcesses lists processes from the operating system process table.
	SystemProcesses struct{}
)

var gameProcessNames = []string{
	"FactoryGame-Win64-Shipping",
	"FactoryGameSteam-Win64-Shipping",
	"FactoryGameEGS-Win64-Shipping",
}

// ProcessNames implements ProcessLister. Processes that exit while being
// listed are skipped.
func (SystemProcesses) ProcessNames(ctx context.Context) ([]string, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	names := make([]string, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}

// IsGameRunning reports whether a game process is listed by lister.
func IsGameRunning(ctx context.Context, lister ProcessLister) (bool, error) {
	names, err := lister.ProcessNames(ctx)
	if err != nil {
		return false, err
	}
	for _, name := range names {
		if isGameProcess(name) {
			return true, nil
		}
	}
	return false, nil
}

func isGameProcess(name string) bool {
	name = strings.TrimSuffix(strings.ToLower(name), ".exe")
	for _, game := range gameProcessNames {
		if name == strings.ToLower(game) {
			return true
		}
	}
	return false
}
