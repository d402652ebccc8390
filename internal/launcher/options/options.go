// Package options manages persisted launcher and game settings as JSON
// files in the launcher directory.
package options

import "fmt"

// GarbageCollector identifies the JVM garbage collector the game runs with.
type GarbageCollector string

const (
	GCSerial     GarbageCollector = "Serial"
	GCParallel   GarbageCollector = "Parallel"
	GCG1         GarbageCollector = "G1GC"
	GCZ          GarbageCollector = "ZGC"
	GCShenandoah GarbageCollector = "Shenandoah"
)

// BaseVMFlags are JVM flags applied to every game launch regardless of
// user-configured options.
var BaseVMFlags = []string{
	"-XX:+UnlockExperimentalVMOptions",
	"-XX:+AlwaysPreTouch",
	"-XX:+DisableExplicitGC",
	"-XX:+ParallelRefProcEnabled",
	"-Dfile.encoding=UTF-8",
}

// LauncherOptions holds user-facing launcher behavior settings.
type LauncherOptions struct {
	LauncherDir         string `json:"launcher_dir"`
	GameDir             string `json:"game_dir"`
	KeepLauncherOpen    bool   `json:"keep_launcher_open"`
	ShowCommunityNews   bool   `json:"show_community_news"`
	EnableDebugConsole  bool   `json:"enable_debug_console"`
	AutomaticJavaSetup  bool   `json:"automatic_java_setup"`
	CheckUpdatesOnStart bool   `json:"check_updates_on_start"`
}

// GameOptions holds JVM settings applied when launching the game.
type GameOptions struct {
	GarbageCollector GarbageCollector `json:"garbage_collector"`
	ExtraVMFlags     []string         `json:"extra_vm_flags"`
	MaxRAMMB         int              `json:"max_ram_mb"`
}

// DefaultLauncherOptions returns launcher settings for a fresh install,
// rooted under the user's configuration directory.
func DefaultLauncherOptions(configDir string) *LauncherOptions {
	return &LauncherOptions{
		LauncherDir:         configDir,
		GameDir:             configDir,
		KeepLauncherOpen:    true,
		ShowCommunityNews:   true,
		EnableDebugConsole:  false,
		AutomaticJavaSetup:  true,
		CheckUpdatesOnStart: true,
	}
}

// DefaultGameOptions returns JVM settings for a fresh install.
func DefaultGameOptions() *GameOptions {
	return &GameOptions{
		GarbageCollector: GCG1,
		ExtraVMFlags:     nil,
		MaxRAMMB:         4096,
	}
}

// VMArgs assembles the full JVM argument list for a launch: the memory cap,
// the collector selection, the base flags, and any user extras.
func (g *GameOptions) VMArgs() []string {
	args := []string{
		fmt.Sprintf("-Xmx%dM", g.MaxRAMMB),
	}

	switch g.GarbageCollector {
	case GCSerial:
		args = append(args, "-XX:+UseSerialGC")
	case GCParallel:
		args = append(args, "-XX:+UseParallelGC")
	case GCZ:
		args = append(args, "-XX:+UseZGC")
	case GCShenandoah:
		args = append(args, "-XX:+UseShenandoahGC")
	default:
		args = append(args, "-XX:+UseG1GC")
	}

	args = append(args, BaseVMFlags...)
	args = append(args, g.ExtraVMFlags...)
	return args
}
