package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"simplec/internal/diagfmt"
	"simplec/internal/driver"
	"simplec/internal/project"
	"simplec/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build [dir]",
	Short: "Compile every .sc file under a directory and report diagnostics per file",
	Long: "build walks a directory (simplec.toml's [source].dir by default, or the " +
		"positional argument when given), runs compile_frontend over every .sc file " +
		"concurrently, and reports each file's diagnostics.",
	Args: cobra.MaximumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().Int("jobs", 0, "maximum concurrent compiles (0 = unbounded)")
	buildCmd.Flags().String("ui", "auto", "progress display (auto|on|off)")
}

func runBuild(cmd *cobra.Command, args []string) error {
	manifest, err := project.Load(".")
	if err != nil {
		return fmt.Errorf("failed to read simplec.toml: %w", err)
	}

	dir := manifest.Source.Dir
	if len(args) > 0 {
		dir = args[0]
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	uiMode, _ := cmd.Flags().GetString("ui")

	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var results []driver.FileResult
	if shouldRenderUI(uiMode, len(files)) {
		results, err = runBuildWithUI(cmd, dir, files, jobs)
	} else {
		results, err = driver.CompileDir(cmd.Context(), dir, jobs)
	}
	if err != nil {
		return err
	}

	failures := 0
	for _, fr := range results {
		if !fr.Result.HasErrors() {
			continue
		}
		failures++
		if err := reportFileResult(cmd, manifest, fr); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stdout, "compiled %d file(s), %d with diagnostics\n", len(results), failures)
	if failures > 0 {
		return fmt.Errorf("%d file(s) produced diagnostics", failures)
	}
	return nil
}

// reportFileResult writes one failing file's diagnostics, in simplec.toml's
// configured [output].format rather than the --format flag: build reports
// many files at once, so its wire shape is driven by project configuration.
func reportFileResult(cmd *cobra.Command, manifest project.Manifest, fr driver.FileResult) error {
	switch manifest.Output.Format {
	case "json":
		return diagfmt.WriteJSON(os.Stdout, diagfmt.BuildPayload(fr.Result.Tokens, fr.Result.AST, fr.Result.Diagnostics))
	case "msgpack":
		return diagfmt.WriteMsgpack(os.Stdout, diagfmt.BuildPayload(fr.Result.Tokens, fr.Result.AST, fr.Result.Diagnostics))
	default:
		fmt.Fprintf(os.Stderr, "%s:\n", fr.Path)
		printDiagnostics(cmd, "", fr.Result.Diagnostics)
		return nil
	}
}

func shouldRenderUI(mode string, fileCount int) bool {
	if mode == "off" || fileCount == 0 {
		return false
	}
	if mode == "on" {
		return true
	}
	return isTerminal(os.Stdout)
}

func runBuildWithUI(cmd *cobra.Command, dir string, files []string, jobs int) ([]driver.FileResult, error) {
	events := make(chan ui.Event, len(files)*2+1)
	model := ui.NewProgressModel(fmt.Sprintf("simplec build %s", dir), files, events)
	program := tea.NewProgram(model)

	var results []driver.FileResult
	var compileErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer close(events)
		results, compileErr = driver.CompileDirWithProgress(cmd.Context(), dir, jobs, func(path string, finished, failed bool) {
			status := ui.StatusCompiling
			if finished {
				status = ui.StatusDone
				if failed {
					status = ui.StatusError
				}
			}
			events <- ui.Event{Path: path, Status: status}
		})
	}()

	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("progress UI: %w", err)
	}
	<-done
	return results, compileErr
}
