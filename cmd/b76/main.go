// Command b76 evaluates a single Black-76 request.
//
// The request is given either as hex (-hex) or as a YAML request file (-file):
//
//  operation: prices_delta
//  expiry_seconds: 2592000
//  exponent: 18
//  discount: "0.99"
//  volatility: "0.5"
//  forward: "1500"
//  strike: "1600"
//
// The response is printed as hex followed by one decoded decimal per word.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/calebcase/oops"

	"github.com/calebcase/b76"
	"github.com/calebcase/b76/fixed"
	"github.com/calebcase/b76/selector"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("b76", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		hexFlag  = fs.String("hex", "", "request as hex (selector and arguments)")
		fileFlag = fs.String("file", "", "YAML request file")
		opFlag   = fs.String("op", "", "override the operation of the request")
		logLevel = fs.String("log-level", "info", "log level (debug, info, warn, error)")
	)

	err := fs.Parse(argv)
	if err != nil {
		return 2
	}

	var level slog.Level
	err = level.UnmarshalText([]byte(*logLevel))
	if err != nil {
		fmt.Fprintf(stderr, "invalid log level %q\n", *logLevel)
		return 2
	}

	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	req, op, err := load(*hexFlag, *fileFlag)
	if err != nil {
		log.Error("failed to load request", "error", err)
		return 1
	}

	if *opFlag != "" {
		override, ok := selector.Operations.Lookup(*opFlag)
		if !ok {
			log.Error("unknown operation", "operation", *opFlag)
			return 2
		}

		op = override
		if len(req) >= selector.Size {
			copy(req, op.Selector[:])
		}
	}

	log.Debug("evaluating request",
		"operation", op.Name,
		"request", fmt.Sprintf("%x", req),
		"gas", b76.RequiredGas(req),
	)

	out, err := b76.Compute(req)
	if err != nil {
		code, _ := b76.CodeOf(err)
		log.Error("request failed", "code", uint8(code), "error", err)
		return 1
	}

	err = report(stdout, op, req, out)
	if err != nil {
		log.Error("failed to write response", "error", err)
		return 1
	}

	return 0
}

func load(hexText, file string) (req []byte, op selector.Operation, err error) {
	switch {
	case hexText != "" && file != "":
		return nil, op, Error.New("-hex and -file are exclusive")
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, op, oops.Trace(err)
		}

		return parseFile(data)
	case hexText != "":
		req, err = parseHex(hexText)
		if err != nil {
			return nil, op, err
		}

		op, _ = selector.Operations.Match(req)

		return req, op, nil
	}

	return nil, op, Error.New("one of -hex or -file is required")
}

func report(w io.Writer, op selector.Operation, req, out []byte) (err error) {
	_, err = fmt.Fprintf(w, "%x\n", out)
	if err != nil {
		return oops.Trace(err)
	}

	words, err := b76.Response(out)
	if err != nil {
		return err
	}

	exponent := int8(req[len(req)-1])

	for i, word := range words {
		if i >= len(op.Fields) {
			break
		}

		d := fixed.Decimal{Raw: word.Big(), Exponent: exponent}

		_, err = fmt.Fprintf(w, "%s: %s\n", op.Fields[i], d)
		if err != nil {
			return oops.Trace(err)
		}
	}

	return nil
}
