package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/codegen-labs/codegen/internal/config"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newDoctorCmd(a *app) *cobra.Command {
	var skipNetwork bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the generation service and output directory",
		Long: `Run diagnostic checks: the generation service answers a test prompt,
the output root is writable, and the config file is readable.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			failed := 0

			fmt.Fprintln(w, "Generation service:")
			client := a.newClient()
			if skipNetwork {
				fmt.Fprintf(w, "  [SKIP] %s\n", client.Endpoint())
			} else if err := client.Ping(cmd.Context()); err != nil {
				fmt.Fprintf(w, "  [FAIL] %s: %v\n", client.Endpoint(), err)
				failed++
			} else {
				fmt.Fprintf(w, "  [ OK ] %s\n", client.Endpoint())
			}

			fmt.Fprintln(w, "Output root:")
			root, err := a.outputRoot()
			if err != nil {
				fmt.Fprintf(w, "  [FAIL] %v\n", err)
				failed++
			} else if err := checkWritable(afero.NewOsFs(), root); err != nil {
				fmt.Fprintf(w, "  [FAIL] %s: %v\n", root, err)
				failed++
			} else {
				fmt.Fprintf(w, "  [ OK ] %s is writable\n", root)
			}

			fmt.Fprintln(w, "Config:")
			checkConfigFile(w, config.FilePath())

			if failed > 0 {
				return fmt.Errorf("%d check(s) failed", failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipNetwork, "offline", false, "skip the generation service check")
	return cmd
}

// checkWritable creates and removes a scratch file in dir.
func checkWritable(fs afero.Fs, dir string) error {
	info, err := fs.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	f, err := afero.TempFile(fs, dir, ".codegen-doctor-*")
	if err != nil {
		return err
	}
	name := f.Name()
	f.Close()
	return fs.Remove(name)
}

func checkConfigFile(w io.Writer, path string) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintf(w, "  [INFO] %s not found, using defaults\n", path)
			return
		}
		fmt.Fprintf(w, "  [WARN] %s: %v\n", path, err)
		return
	}
	fmt.Fprintf(w, "  [ OK ] %s\n", path)
}
