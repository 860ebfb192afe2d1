// Command meshconv round-trips between the token-stream triangle soup
// format and STL. It is pure plumbing around meshio, not part of the
// BSP/hull invariant set.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/coredelta/bsp3d/meshio"
	"github.com/spf13/cobra"
)

var outPath string

func openIn(args []string) (string, io.ReadCloser, error) {
	if len(args) == 0 {
		return "<stdin>", io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(args[0])
	return args[0], f, err
}

func openOut() (io.WriteCloser, error) {
	if outPath == "" {
		return noopCloser{os.Stdout}, nil
	}
	return os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
}

type noopCloser struct{ io.Writer }

func (noopCloser) Close() error { return nil }

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

func stl2mesh(cmd *cobra.Command, args []string) {
	name, r, err := openIn(args)
	if err != nil {
		fail("failed to open", name, ":", err)
	}
	defer r.Close()

	scene, err := meshio.ReadSTL(r)
	if err != nil {
		fail("failed to read STL", name, ":", err)
	}

	w, err := openOut()
	if err != nil {
		fail("failed to open output:", err)
	}
	defer w.Close()

	numPoints := len(scene.Triangles) * 3
	fmt.Fprintf(w, "%d %d 0\n", numPoints, len(scene.Triangles))
	for _, t := range scene.Triangles {
		for _, v := range t.V {
			fmt.Fprintf(w, "%g %g %g\n", v.X, v.Y, v.Z)
		}
	}
	for i := range scene.Triangles {
		fmt.Fprintf(w, "%d %d %d\n", i*3+1, i*3+2, i*3+3)
	}
}

func mesh2stl(cmd *cobra.Command, args []string) {
	name, r, err := openIn(args)
	if err != nil {
		fail("failed to open", name, ":", err)
	}
	defer r.Close()

	scene, err := meshio.ReadTokens(r)
	if err != nil {
		fail("failed to read token stream", name, ":", err)
	}

	w, err := openOut()
	if err != nil {
		fail("failed to open output:", err)
	}
	defer w.Close()

	if err := meshio.WriteSTL(w, scene.Triangles); err != nil {
		fail("failed to write STL:", err)
	}
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "meshconv",
		Short: "Convert triangle soups between STL and the token-stream format",
	}

	stl2meshCmd := &cobra.Command{
		Use:   "stl2mesh [STL file]",
		Short: "Convert an STL mesh to the N T L token-stream triangle soup",
		Long:  "stl2mesh reads an STL mesh and writes its triangles in token-stream form (each triangle's three vertices become their own point lines, shared vertices are not merged, and no segments are written). If no file is given, reads from stdin.",
		Run:   stl2mesh,
	}
	stl2meshCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file; defaults to stdout")
	rootCmd.AddCommand(stl2meshCmd)

	mesh2stlCmd := &cobra.Command{
		Use:   "mesh2stl [token file]",
		Short: "Convert a token-stream triangle soup to a binary STL mesh",
		Long:  "mesh2stl reads the N T L token-stream format and writes the triangles as binary STL. If no file is given, reads from stdin.",
		Run:   mesh2stl,
	}
	mesh2stlCmd.Flags().StringVarP(&outPath, "output", "o", "", "output file; defaults to stdout")
	rootCmd.AddCommand(mesh2stlCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
