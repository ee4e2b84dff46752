package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"docspell/internal/source"
	"docspell/internal/traverse"
)

var modulesCmd = &cobra.Command{
	Use:   "modules [paths...]",
	Short: "List the files reachable through the module tree",
	Long:  `Modules prints every visited check item in visit order together with the file that declared it.`,
	RunE:  runModules,
}

func runModules(cmd *cobra.Command, args []string) error {
	items, _, err := classifyArgs(app.logger, args)
	if err != nil {
		return err
	}
	res, err := traverse.Run(cmd.Context(), source.NewFileSet(), items, traverse.Options{
		Recursive: true,
		Logger:    app.logger,
	})
	if err != nil {
		return err
	}

	baseDir, _ := os.Getwd()
	declaredBy := make(map[string]string, len(res.Edges))
	for _, e := range res.Edges {
		if _, ok := declaredBy[e.To]; !ok {
			declaredBy[e.To] = e.From
		}
	}
	out := cmd.OutOrStdout()
	for i, u := range res.Units {
		name := u.Item.String()
		if u.Item.Path != "" {
			name = displayPath(baseDir, u.Item.Path)
		}
		line := fmt.Sprintf("%3d  %-11s %s", i+1, u.Item.Kind, name)
		if from, ok := declaredBy[u.Item.Path]; ok {
			line += "  (declared in " + displayPath(baseDir, from) + ")"
		}
		fmt.Fprintln(out, line)
	}
	return nil
}

// displayPath shortens path relative to base when it lies below it.
func displayPath(base, path string) string {
	if base == "" {
		return path
	}
	rel, err := filepath.Rel(base, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
