// Package log builds [log/slog] handlers from level and format names.
//
// Three formats are supported: [FormatJSON], [FormatLogfmt], and
// [FormatText]. Levels are [LevelError], [LevelWarn], [LevelInfo], and
// [LevelDebug]. Use [NewHandler] directly, or [Config] to expose the choice as
// CLI flags via [github.com/spf13/pflag], where [Level] and [Format]
// parse themselves as flag values, with completions via
// [github.com/spf13/cobra]:
//
//	cfg := log.NewConfig()
//	cfg.RegisterFlags(rootCmd.PersistentFlags())
//	cfg.RegisterCompletions(rootCmd)
//
//	slog.SetDefault(slog.New(cfg.NewHandler(os.Stderr)))
package log
