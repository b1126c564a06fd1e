package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"

	"github.com/ribosom/ribosom/ribosome"
)

const (
	version  = "0.1.0"
	toolName = "ribosom"
)

var log = logging.MustGetLogger("ribosom")

// GlobalOptions struct to store command line args
type GlobalOptions struct {
	Args             Required `positional-args:"yes"`
	ribosome.Options `group:"optional"`
	Output           `group:"output"`
	General          `group:"general"`
}

// Required struct to store required command line args
type Required struct {
	Sequence string `positional-arg-name:"<dna file>" description:"DNA sequence filename, newlines are ignored"`
}

// Output struct to store report and log command line args
type Output struct {
	Outseq   string `short:"o" long:"output" value-name:"<filename>" description:"Write the report to this file instead of the standard output"`
	LogLevel string `long:"loglevel" value-name:"<level>" description:"Log level: CRITICAL, ERROR, WARNING, NOTICE, INFO or DEBUG" default:"WARNING"`
}

// General struct to store general command line args
type General struct {
	Help    bool `short:"h" long:"help" description:"Show this help message"`
	Version bool `short:"v" long:"version" description:"Print the tool version and exit"`
}

func setupLogging(w io.Writer, logLevel string) error {

	logging.SetFormatter(logging.MustStringFormatter(`%{message}`))
	logging.SetBackend(logging.NewLogBackend(w, "", 0))

	level, err := logging.LogLevel(logLevel)
	if err != nil {
		return err
	}
	for _, module := range []string{"ribosom", "ribosome", "codontable"} {
		logging.SetLevel(level, module)
	}
	return nil
}

func run(options GlobalOptions, stdout io.Writer) error {

	if options.Args.Sequence == "" {
		return fmt.Errorf("missing required parameter <dna file>, try %s --help for details", toolName)
	}
	if options.Trials < 1 {
		return fmt.Errorf("wrong value for -n | --trials parameter: %d, must be at least 1", options.Trials)
	}

	in, err := os.Open(options.Args.Sequence)
	if err != nil {
		return err
	}
	defer in.Close()

	out := stdout
	if options.Outseq != "" {
		f, err := os.Create(options.Outseq)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
		log.Infof("writing report to %s", options.Outseq)
	}

	return ribosome.Run(in, out, options.Options)
}

func main() {

	var options GlobalOptions
	p := flags.NewParser(&options, flags.Default&^flags.HelpFlag)
	_, err := p.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "wrong arguments: %v, try %s --help for more informations\n", err, toolName)
		os.Exit(1)
	}
	if options.Help {
		fmt.Printf("%s version %s\n\n", toolName, version)
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	}
	if options.Version {
		fmt.Printf("%s version %s\n", toolName, version)
		os.Exit(0)
	}

	err = setupLogging(os.Stderr, options.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wrong value for --loglevel parameter: %v\n", err)
		os.Exit(1)
	}

	err = run(options, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fail to translate sequence:\n%v\n", err)
		os.Exit(1)
	}
}
