// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/ucsynth/disasm"
	"github.com/ezrec/ucsynth/inst"
	"github.com/ezrec/ucsynth/script"
	"github.com/ezrec/ucsynth/translate"
)

// defineFlags collects repeated -D NAME=VALUE flags.
type defineFlags map[string]int

func (df defineFlags) String() string {
	return fmt.Sprint(map[string]int(df))
}

func (df defineFlags) Set(text string) (err error) {
	name, value, ok := strings.Cut(text, "=")
	if !ok {
		return fmt.Errorf("%v: expected NAME=VALUE", text)
	}

	n, err := strconv.ParseInt(value, 0, 32)
	if err != nil {
		return
	}

	df[name] = int(n)
	return
}

func main() {
	var eval bool
	var decode bool
	var colorize bool
	var lang string
	var verbose bool
	defines := defineFlags{}

	flag.BoolVar(&eval, "e", false, "Evaluate arguments as expressions")
	flag.BoolVar(&decode, "d", false, "Decode hex words from arguments, or stdin")
	flag.BoolVar(&colorize, "color", false, "Colorize the listing")
	flag.StringVar(&lang, "lang", "", "Message language (default from locale)")
	flag.Var(defines, "D", "Define NAME=VALUE for expressions")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if eval == decode {
		log.Fatalf("%v: exactly one of -e or -d is required", os.Args[0])
	}

	if len(lang) != 0 {
		err := translate.Use(lang)
		if err != nil {
			log.Fatalf("%v: %v", lang, err)
		}
	}

	var words []inst.Word

	if eval {
		env := script.NewEnv()
		env.Verbose = verbose
		for name, value := range defines {
			err := env.Define(name, value)
			if err != nil {
				log.Fatalf("%v: %v", name, err)
			}
		}

		for _, expr := range flag.Args() {
			w, err := env.Eval(expr)
			if err != nil {
				log.Fatalf("%v: %v", expr, err)
			}
			words = append(words, w)
		}
	}

	if decode {
		if flag.NArg() == 0 {
			var err error
			words, err = disasm.ReadWords(os.Stdin)
			if err != nil {
				log.Fatalf("stdin: %v", err)
			}
		}

		for _, arg := range flag.Args() {
			w, err := disasm.ParseWord(arg)
			if err != nil {
				log.Fatalf("%v: %v", arg, err)
			}
			words = append(words, w)
		}
	}

	if verbose {
		log.Printf("ucsynth: %d words", len(words))
	}

	lst := disasm.NewListing(os.Stdout, colorize)
	err := lst.Write(words)
	if err != nil {
		log.Fatal(err)
	}
}
