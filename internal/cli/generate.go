package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/katalvlaran/fctp/transport"
)

func runGenerate(args []string, stdout, stderr io.Writer) error {
	fs := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		sources      = fs.Int("sources", 10, "number of sources")
		destinations = fs.Int("destinations", 10, "number of destinations")
		seed         = fs.Int64("seed", 0, "random seed (0 = derive from the clock)")
		format       = fs.String("format", "text", "output format: text or yaml")
		out          = fs.String("out", "", "write to this file instead of stdout")
	)
	if err := fs.Parse(args); err != nil {
		return parseError(err)
	}
	if fs.NArg() != 0 {
		return usagef("generate takes no positional arguments, got %v", fs.Args())
	}

	var write func(io.Writer, *transport.Problem) error
	switch *format {
	case "text":
		write = transport.WriteText
	case "yaml":
		write = transport.WriteYAML
	default:
		return usagef("unknown format %q", *format)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	p, err := transport.Generate(*sources, *destinations, rand.New(rand.NewSource(*seed)))
	if err != nil {
		return err
	}

	if *out == "" {
		return write(stdout, p)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err = write(bw, p); err == nil {
		err = bw.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("write %s: %w", *out, err)
	}

	return nil
}
