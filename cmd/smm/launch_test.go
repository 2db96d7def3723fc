// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"smm-cli/internal/launch"
	"smm-cli/internal/testutil"
)

func registerCustom(t *testing.T, env *testEnv, gameDir string) {
	t.Helper()
	env.writeConfig(t, `custom_installs: ["`+filepath.ToSlash(gameDir)+`"]`)
}

func TestLaunch_DryRun(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	gameDir, exe := testutil.GameDir(t, "FactoryGame", "Binaries", "Win64", "FactoryGame-Win64-Shipping.exe")
	registerCustom(t, env, gameDir)

	stdout, _, err := env.run(t, "launch", gameDir, "--dry-run", "-o", "json")
	if err != nil {
		t.Fatalf("launch --dry-run: %v", err)
	}
	got := decodeJSON[launchView](t, stdout)
	want := []string{"steam", "steam://launch/1895860", exe}
	if !slices.Equal(got.Command, want) || !got.DryRun {
		t.Errorf("launch view = %+v, want command %q", got, want)
	}
	if calls := env.runner.Calls(); len(calls) != 0 {
		t.Errorf("dry run must not start the game, got %v", calls)
	}
}

func TestLaunch_Runs(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	gameDir, exe := testutil.GameDir(t, "FactoryGame.exe")
	env.writeConfig(t, `
steam: app_id: "526870"
custom_installs: ["`+filepath.ToSlash(gameDir)+`"]
`)

	stdout, _, err := env.run(t, "launch", gameDir)
	if err != nil {
		t.Fatalf("launch: %v", err)
	}
	if !strings.Contains(stdout, "Started") {
		t.Errorf("stdout = %q", stdout)
	}
	calls := env.runner.Calls()
	want := []string{"steam", "steam://launch/526870", exe}
	if len(calls) != 1 || !slices.Equal(calls[0], want) {
		t.Errorf("runner calls = %q, want [%q]", calls, want)
	}
}

func TestLaunch_ConfiguredLaunchPath(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.writeConfig(t, `installations: [{
	path: "/games/steam/sf"
	type: "windows-client"
	launcher: "Steam"
	launch_path: ["steam", "steam://rungameid/526870"]
}]`)

	if _, _, err := env.run(t, "launch", "/games/steam/sf"); err != nil {
		t.Fatalf("launch: %v", err)
	}
	calls := env.runner.Calls()
	if len(calls) != 1 || !slices.Equal(calls[0], []string{"steam", "steam://rungameid/526870"}) {
		t.Errorf("runner calls = %q", calls)
	}
}

func TestLaunch_AlreadyRunning(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	env.procs.names = []string{"FactoryGame-Win64-Shipping.exe"}
	gameDir, _ := testutil.GameDir(t, "FactoryGame.exe")
	registerCustom(t, env, gameDir)

	_, _, err := env.run(t, "launch", gameDir)
	if !errors.Is(err, ErrGameAlreadyRunning) {
		t.Fatalf("error = %v, want ErrGameAlreadyRunning", err)
	}
	if calls := env.runner.Calls(); len(calls) != 0 {
		t.Errorf("runner must not be called, got %v", calls)
	}
}

func TestLaunch_RunnerError(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	boom := errors.New("steam not installed")
	env.runner.err = boom
	gameDir, _ := testutil.GameDir(t, "FactoryGame.exe")
	registerCustom(t, env, gameDir)

	if _, _, err := env.run(t, "launch", gameDir); !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
}

func TestLaunch_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		config     func(gameDir string) string
		wantErr    error
		wantStderr string
	}{
		{
			name:       "not registered",
			config:     func(string) string { return "" },
			wantErr:    ErrInstallationNotRegistered,
			wantStderr: "Installation not registered",
		},
		{
			name: "no launch path",
			config: func(gameDir string) string {
				return `installations: [{path: "` + filepath.ToSlash(gameDir) + `", type: "windows-server", launcher: "Steam"}]`
			},
			wantErr:    launch.ErrNoLaunchPath,
			wantStderr: "No launch command",
		},
		{
			name: "custom without executable",
			config: func(gameDir string) string {
				return `installations: [{path: "` + filepath.ToSlash(gameDir) + `", type: "windows-client", launcher: "Custom"}]`
			},
			wantErr:    launch.ErrExecutableNotFound,
			wantStderr: "Game executable not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env := newTestEnv(t)
			gameDir := t.TempDir()
			env.writeConfig(t, tt.config(gameDir))

			_, stderr, err := env.run(t, "launch", gameDir)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if !strings.Contains(stderr, tt.wantStderr) {
				t.Errorf("stderr should contain %q, got %q", tt.wantStderr, stderr)
			}
		})
	}
}
