package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~sircmpwn/getopt"

	"git.sr.ht/~mango/mint/lexer"
	"git.sr.ht/~mango/mint/log"
	"git.sr.ht/~mango/mint/parser"
	"git.sr.ht/~mango/mint/pkg/omap"
)

func main() {
	opts, optind, err := getopt.Getopts(os.Args, "c:")
	if err != nil {
		log.Err("%s", err)
		usage()
	}

	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			if !runBlock(strings.NewReader(opt.Value)) {
				os.Exit(1)
			}
			return
		}
	}

	switch args := os.Args[optind:]; len(args) {
	case 0:
		runRepl()
	case 1:
		runFile(args[0])
	default:
		usage()
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: mint [-c program] [file]")
	os.Exit(1)
}

func runRepl() {
	r := bufio.NewReader(os.Stdin)

	fmt.Println("Please enter program")
	fmt.Println("After entering program, press Enter on empty line to run it.")

	for {
		block, err := readBlock(r)
		switch {
		case errors.Is(err, io.EOF):
			fmt.Fprintln(os.Stderr, "^D")
			return
		case err != nil:
			log.Err("%s", err)
			return
		}

		runBlock(strings.NewReader(block))

		fmt.Println("Type 'no' to exit, anything else to continue:")
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			log.Err("%s", err)
		}
		if errors.Is(err, io.EOF) || strings.EqualFold(strings.TrimSpace(line), "no") {
			fmt.Println("Process end")
			return
		}
	}
}

// readBlock collects input lines up to, but not including, the first empty
// line.
func readBlock(r *bufio.Reader) (string, error) {
	sb := strings.Builder{}
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			return "", err
		}
		if strings.TrimRight(line, "\r\n") == "" {
			return sb.String(), nil
		}
		sb.WriteString(line)
	}
}

func runFile(name string) {
	log.CrashOnError = true

	f, err := os.Open(name)
	if err != nil {
		log.Err("%s", err)
	}
	defer f.Close()

	if !runBlock(f) {
		os.Exit(1)
	}
}

// runBlock evaluates one program block and reports it, printing a single
// ‘error’ line instead if the block fails anywhere.
func runBlock(r io.Reader) bool {
	l := lexer.New(r)
	go l.Run()

	vars, err := parser.New(l.Out).Run()
	if err != nil {
		fmt.Println("error")
		return false
	}

	report(vars)
	return true
}

func report(vars omap.Map[string, int]) {
	vars.Each(func(name string, val int) {
		fmt.Printf("%s = %d\n", name, val)
	})
}
