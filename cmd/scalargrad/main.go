// Package main provides the scalargrad CLI.
package main

import (
	"fmt"
	"os"

	"github.com/scalar-ml/scalargrad/engine"
	"github.com/scalar-ml/scalargrad/viz"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("scalargrad %s\n", version)
			return
		case "demo":
			if err := demo(); err != nil {
				fmt.Fprintln(os.Stderr, "demo:", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("scalargrad - scalar reverse-mode automatic differentiation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate a sample expression and print its graph as DOT")
}

// demo differentiates z = x*x + x at x = 3 and prints the graph.
// Pipe the output through `dot -Tsvg` to render it.
func demo() error {
	x := engine.New(3)
	x.SetLabel("x")

	y := x.Mul(x)
	y.SetLabel("y")

	z := y.Add(x)
	z.SetLabel("z")

	if err := z.Backward(); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "z = x*x + x at x=%v: z=%v, dz/dx=%v\n", x.Data(), z.Data(), x.Grad())
	fmt.Println(viz.Dot(z))
	return nil
}
