package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/botwire/botwire"
	"github.com/botwire/botwire/codec"
	"github.com/botwire/botwire/telegram"
)

func main() {
	var (
		file        = flag.String("file", "", "Path to JSON document (- or empty for stdin)")
		typeName    = flag.String("type", "update", "Registered type to decode against")
		strict      = flag.Bool("strict", false, "Reject fields the catalog does not declare")
		list        = flag.Bool("list", false, "List registered types and exit")
		verbose     = flag.Bool("v", false, "Verbose logging (schema drift events)")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *list {
		for _, name := range telegram.Registry().Names() {
			fmt.Println(name)
		}
		return
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		codec.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*typeName); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*file, *typeName, *strict); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(file, typeName string, strict bool) error {
	var r io.Reader
	if file == "" || file == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("open file: %w", err)
		}
		defer f.Close()
		r = f
	}

	doc, err := botwire.ParseDocument(r)
	if err != nil {
		return err
	}

	var opts []codec.Option
	if strict {
		opts = append(opts, codec.WithStrictFields())
	}
	v, err := codec.NewDecoder(telegram.Registry(), opts...).Decode(doc, typeName)
	if err != nil {
		return err
	}

	fmt.Print(renderValue(v, stdoutIsTTY()))
	return nil
}
